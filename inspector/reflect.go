package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Widget selects how a component field is drawn.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar
	WidgetBool
	WidgetSkip
)

var widgetNames = map[string]Widget{
	"label": WidgetLabel,
	"bar":   WidgetBar,
	"bool":  WidgetBool,
	"skip":  WidgetSkip,
}

// Hints are the options of an inspect tag.
type Hints struct {
	Format string  // fmt verb applied to labels
	Max    float32 // full-scale value of a bar, 1 when unset
}

// Field is one exported component field ready for display.
type Field struct {
	Name   string
	Value  any
	Widget Widget
	Hints  Hints
}

// ParseTag parses an inspect struct tag of the form
// `inspect:"widget[,fmt:verb][,max:n]"`, for example `inspect:"bar,max:3"`
// or `inspect:"label,fmt:%d frames"`. Unknown widgets and options are ignored.
func ParseTag(tag string) (Widget, Hints) {
	hints := Hints{Max: 1}
	if tag == "" {
		return WidgetAuto, hints
	}

	name, opts, _ := strings.Cut(tag, ",")
	widget := widgetNames[strings.TrimSpace(name)]

	for _, opt := range strings.Split(opts, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(opt), ":")
		if !ok {
			continue
		}
		switch key {
		case "fmt":
			hints.Format = val
		case "max":
			if m, err := strconv.ParseFloat(val, 32); err == nil && m > 0 {
				hints.Max = float32(m)
			}
		}
	}
	return widget, hints
}

// ExtractFields lists the exported fields of a component struct (or pointer
// to one). Untagged bools become WidgetBool, other untagged fields labels.
func ExtractFields(component any) []Field {
	v := reflect.Indirect(reflect.ValueOf(component))
	if v.Kind() != reflect.Struct {
		return nil
	}

	t := v.Type()
	fields := make([]Field, 0, t.NumField())
	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		widget, hints := ParseTag(sf.Tag.Get("inspect"))
		if widget == WidgetSkip {
			continue
		}

		fv := v.Field(i)
		if widget == WidgetAuto {
			widget = WidgetLabel
			if fv.Kind() == reflect.Bool {
				widget = WidgetBool
			}
		}
		fields = append(fields, Field{Name: sf.Name, Value: fv.Interface(), Widget: widget, Hints: hints})
	}
	return fields
}

// Text formats the field value, using the fmt hint when present.
func (f Field) Text() string {
	if f.Hints.Format != "" {
		return fmt.Sprintf(f.Hints.Format, f.Value)
	}
	if v, ok := f.Value.(float32); ok {
		return strconv.FormatFloat(float64(v), 'f', 2, 32)
	}
	return fmt.Sprint(f.Value)
}

// Ratio returns the value as a fraction of the max hint, clamped to [0, 1].
// ok is false for non-numeric values.
func (f Field) Ratio() (float32, bool) {
	v, ok := numeric(f.Value)
	if !ok {
		return 0, false
	}
	full := f.Hints.Max
	if full <= 0 {
		full = 1
	}
	return min(max(v/full, 0), 1), true
}

// numeric converts the component field types in use to float32.
func numeric(value any) (float32, bool) {
	switch v := value.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int32:
		return float32(v), true
	case int:
		return float32(v), true
	case uint8:
		return float32(v), true
	}
	return 0, false
}
