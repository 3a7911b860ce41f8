package hud

import (
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/driftlabs/driftline/internal/logger"
)

// TitleSink composes HUD fields into a window title line. Titler is the
// small slice of the window surface the HUD needs.
type Titler interface {
	SetTitle(title string)
}

// TitleSink writes "name | field  field  field" into the window title.
type TitleSink struct {
	prefix string
	titler Titler
	fields map[string]string
	order  []string
}

// NewTitleSink creates a title sink with a fixed prefix.
func NewTitleSink(prefix string, titler Titler) *TitleSink {
	return &TitleSink{
		prefix: prefix,
		titler: titler,
		fields: make(map[string]string),
		order:  []string{FieldLap, FieldLapTime, FieldBest, FieldSpeed, FieldSwords},
	}
}

// SetField stores a field and refreshes the title.
func (t *TitleSink) SetField(name, value string) {
	if t.fields[name] == value {
		return
	}
	t.fields[name] = value

	parts := []string{t.prefix}
	for _, f := range t.order {
		if v, ok := t.fields[f]; ok {
			parts = append(parts, v)
		}
	}
	t.titler.SetTitle(strings.Join(parts, "  |  "))
}

// LogSink writes HUD fields to the debug log. Useful for headless runs
// and tests.
type LogSink struct{}

// SetField logs the field at debug level.
func (LogSink) SetField(name, value string) {
	logger.Debug("hud", zap.String("field", name), zap.String("value", value))
}

// RecordingSink captures fields for assertions in tests.
type RecordingSink struct {
	Fields map[string]string
}

// NewRecordingSink creates an empty recording sink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{Fields: make(map[string]string)}
}

// SetField records the value.
func (r *RecordingSink) SetField(name, value string) {
	r.Fields[name] = value
}

// Names returns the recorded field names, sorted.
func (r *RecordingSink) Names() []string {
	names := make([]string, 0, len(r.Fields))
	for n := range r.Fields {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
