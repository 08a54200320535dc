package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
)

const executionLogTimeFormat = "20060102_150405"

// ExecutionLogFileName returns the name of the execution log file for the provided start time
func ExecutionLogFileName(startTime time.Time) string {
	return fmt.Sprintf("execution_log_%s.txt", startTime.Format(executionLogTimeFormat))
}

// AttachExecutionLog mirrors every log line into an execution log file created in the output directory.
// The returned function detaches the observer and closes the file
func AttachExecutionLog(outputDirectory string, startTime time.Time) (func(), error) {
	err := os.MkdirAll(outputDirectory, os.ModePerm)
	if err != nil {
		return nil, err
	}

	filePath := filepath.Join(outputDirectory, ExecutionLogFileName(startTime))
	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	err = logger.AddLogObserver(file, &logger.PlainFormatter{})
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	log.Debug("execution log attached", "file", filePath)

	return func() {
		log.LogIfError(logger.RemoveLogObserver(file))
		log.LogIfError(file.Close())
	}, nil
}
