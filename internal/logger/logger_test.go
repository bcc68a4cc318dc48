package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T, level string, format OutputFormat, fn func()) string {
	t.Helper()
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	noColor = true
	logger = nil
	InitLogger(level, format)

	fn()
	return buf.String()
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		logFn    func()
		contains []string
		excludes []string
	}{
		{
			name:     "info log",
			level:    "info",
			logFn:    func() { Info("fetching dataset") },
			contains: []string{"fetching dataset", "level=info"},
		},
		{
			name:     "debug log with debug level",
			level:    "debug",
			logFn:    func() { Debug("trying mirror") },
			contains: []string{"trying mirror", "level=debug"},
		},
		{
			name:     "debug log with info level",
			level:    "info",
			logFn:    func() { Debug("trying mirror") },
			excludes: []string{"trying mirror"},
		},
		{
			name:  "warn log with fields",
			level: "warn",
			logFn: func() {
				Warn("mirror failed", Fields{"prefix": "BunnyMesh", "mirror": 2})
			},
			contains: []string{"mirror failed", "level=warning", "prefix=BunnyMesh", "mirror=2"},
		},
		{
			name:     "success log",
			level:    "info",
			logFn:    func() { Success("dataset ready") },
			contains: []string{"dataset ready", "status=success"},
		},
		{
			name:     "formatted info log",
			level:    "info",
			logFn:    func() { Infof("fetched %d datasets", 3) },
			contains: []string{"fetched 3 datasets"},
		},
		{
			name:  "formatted debug with fields",
			level: "debug",
			logFn: func() {
				DebugfWithFields(Fields{"prefix": "KnotMesh"}, "extracting %s", "KnotMesh.ply")
			},
			contains: []string{"extracting KnotMesh.ply", "prefix=KnotMesh"},
		},
		{
			name:     "error log",
			level:    "error",
			logFn:    func() { Error("extraction failed") },
			contains: []string{"extraction failed", "level=error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureOutput(t, tt.level, FormatText, tt.logFn)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, notWant := range tt.excludes {
				assert.NotContains(t, out, notWant)
			}
		})
	}
}

func TestGetLogger_InitializesIfNil(t *testing.T) {
	logger = nil
	assert.NotPanics(t, func() {
		lg := GetLogger()
		assert.NotNil(t, lg)
	})
}

func TestSetOutputFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	SetTestOutput(buf)
	defer UnsetTestOutput()

	noColor = true
	logger = nil
	InitLogger("debug", FormatText)
	Info("text line")
	assert.Contains(t, buf.String(), `msg="text line"`)

	buf.Reset()
	SetOutputFormat(FormatJSON)
	Info("json line", Fields{"prefix": "JuneauImage"})
	out := buf.String()
	assert.Contains(t, out, `"msg":"json line"`)
	assert.Contains(t, out, `"level":"info"`)
	assert.Contains(t, out, `"prefix":"JuneauImage"`)
}

func TestSetLevel(t *testing.T) {
	out := captureOutput(t, "info", FormatText, func() {
		SetLevel("debug")
		Debug("now visible")
		SetLevel("not-a-level")
		Debug("still visible")
	})
	assert.Contains(t, out, "now visible")
	assert.Contains(t, out, "still visible")
}
