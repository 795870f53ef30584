package logger

import (
	"encoding/json"
	"log"
	"os"
)

func Init() {
	log.SetOutput(os.Stdout)
	log.SetFlags(0)
}

type entry struct {
	Level  string         `json:"level"`
	Msg    string         `json:"msg"`
	Fields map[string]any `json:"fields,omitempty"`
}

func write(level, msg string, fields map[string]any) {
	line, err := json.Marshal(entry{Level: level, Msg: msg, Fields: fields})
	if err != nil {
		log.Printf(`{"level":"ERROR","msg":"logger: unmarshalable fields on %q"}`, msg)
		return
	}
	log.Print(string(line))
}

func Info(msg string, fields map[string]any) {
	write("INFO", msg, fields)
}

func Warn(msg string, fields map[string]any) {
	write("WARN", msg, fields)
}

func Error(msg string, fields map[string]any) {
	write("ERROR", msg, fields)
}

func Fatal(msg string, fields map[string]any) {
	write("FATAL", msg, fields)
	os.Exit(1)
}
