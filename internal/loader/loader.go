package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/gostonefire/twohashtable/internal/model"
)

// maxLineLength - Longest dataset line accepted
const maxLineLength int = 1024 * 1024

// LoadStat - Counts from one load
//   - Lines is the number of non-empty lines read
//   - Records is the number of records handed over
//   - Skipped is the number of malformed lines that were skipped
type LoadStat struct {
	Lines   int64
	Records int64
	Skipped int64
}

// Loader - Reads dataset files and hands over each record, in file order, to a receiving function
type Loader struct {
	log *zap.SugaredLogger
}

// NewLoader - Returns a pointer to a new Loader, a nil logger makes it silent
func NewLoader(log *zap.SugaredLogger) *Loader {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	return &Loader{log: log}
}

// LoadFile - Opens the dataset file and loads it, see Load
func (L *Loader) LoadFile(fileName string, receive func(model.Record)) (loadStat LoadStat, err error) {
	f, err := os.Open(fileName)
	if err != nil {
		return
	}
	defer func(f *os.File) { _ = f.Close() }(f)

	loadStat, err = L.Load(f, receive)
	if err != nil {
		err = fmt.Errorf("error while reading %s: %w", fileName, err)
	}

	return
}

// Load - Reads the dataset line by line and calls receive once per record, in the order the lines appear.
// Malformed lines are logged and skipped, empty lines are ignored. A read error stops the load and is returned.
func (L *Loader) Load(r io.Reader, receive func(model.Record)) (loadStat LoadStat, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var lineNo int64
	var record model.Record
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		loadStat.Lines++

		record, err = ParseLine(line)
		if err != nil {
			var ml MalformedLine
			if errors.As(err, &ml) {
				ml.LineNo = lineNo
				L.log.Warnw("skipping dataset line", "line", lineNo, "error", ml.Error())
				loadStat.Skipped++
				err = nil
				continue
			}
			return
		}

		receive(record)
		loadStat.Records++
	}

	err = sc.Err()
	if err == nil {
		L.log.Debugw("dataset loaded", "lines", loadStat.Lines, "records", loadStat.Records, "skipped", loadStat.Skipped)
	}

	return
}
