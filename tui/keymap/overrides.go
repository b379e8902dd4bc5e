// Package keymap lets users rebind TUI keys from the preferences file.
//
//	tui:
//	  keys:
//	    close: ["ctrl+d"]
//	    refresh: ["ctrl+r", "f5"]
package keymap

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"

	"github.com/grovetools/seshconnect/config"
)

// Overrides maps a snake_case binding name to the keys that replace it.
type Overrides map[string][]string

// FromPreferences reads the tui.keys section. Missing or malformed
// sections yield no overrides.
func FromPreferences(prefs *config.Preferences) Overrides {
	if prefs == nil {
		return nil
	}

	var tuiCfg struct {
		Keys Overrides `yaml:"keys"`
	}
	if err := prefs.UnmarshalExtension("tui", &tuiCfg); err != nil {
		return nil
	}
	return tuiCfg.Keys
}

// ApplyOverrides applies overrides to any KeyMap struct passed by pointer.
// Config keys (snake_case) map to key.Binding fields (CamelCase); embedded
// structs are processed recursively. Help text keeps its description and
// shows the first new key.
//
// Example:
//
//	km := picker.DefaultKeyMap
//	ApplyOverrides(&km, Overrides{"close": {"ctrl+d"}}) // km.Close
func ApplyOverrides(km interface{}, overrides Overrides) {
	if len(overrides) == 0 {
		return
	}

	v := reflect.ValueOf(km)
	if v.Kind() != reflect.Ptr {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}

	applyOverridesRecursive(v, overrides)
}

func applyOverridesRecursive(v reflect.Value, overrides Overrides) {
	t := v.Type()
	bindingType := reflect.TypeOf(key.Binding{})

	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)
		fieldType := t.Field(i)

		if !field.CanSet() {
			continue
		}

		if fieldType.Anonymous && field.Kind() == reflect.Struct {
			applyOverridesRecursive(field, overrides)
			continue
		}

		if fieldType.Type != bindingType {
			continue
		}

		keys, ok := overrides[camelToSnake(fieldType.Name)]
		if !ok || len(keys) == 0 {
			continue
		}

		current := field.Interface().(key.Binding)
		field.Set(reflect.ValueOf(key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(keys[0], current.Help().Desc),
		)))
	}
}

// camelToSnake converts a CamelCase string to snake_case.
// Examples: ViewLogs -> view_logs, GoToTop -> go_to_top
func camelToSnake(s string) string {
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
