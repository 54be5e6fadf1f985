package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// JSONSchemaValidator compiles catalog entry schemas and validates widget
// configuration maps against them. Compiled schemas are cached per type.
type JSONSchemaValidator struct {
	mu       sync.RWMutex
	compiled map[string]*jsonschema.Schema
}

// NewJSONSchemaValidator builds a validator backed by jsonschema v5.
func NewJSONSchemaValidator() *JSONSchemaValidator {
	return &JSONSchemaValidator{
		compiled: make(map[string]*jsonschema.Schema),
	}
}

// Validate ensures the provided configuration satisfies the entry's schema.
// Entries without a schema accept anything.
func (v *JSONSchemaValidator) Validate(entry CatalogEntry, config map[string]any) error {
	if len(entry.Schema) == 0 {
		return nil
	}
	schema, err := v.schemaFor(entry)
	if err != nil {
		return err
	}
	var payload map[string]any
	if config == nil {
		payload = map[string]any{}
	} else {
		data, err := json.Marshal(config)
		if err != nil {
			return fmt.Errorf("dashboard: marshal config for %s: %w", entry.WidgetType, err)
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return fmt.Errorf("dashboard: normalize config for %s: %w", entry.WidgetType, err)
		}
	}
	if err := schema.Validate(payload); err != nil {
		return fmt.Errorf("dashboard: configuration for %s failed validation: %w", entry.WidgetType, err)
	}
	return nil
}

func (v *JSONSchemaValidator) schemaFor(entry CatalogEntry) (*jsonschema.Schema, error) {
	v.mu.RLock()
	schema, ok := v.compiled[entry.WidgetType]
	v.mu.RUnlock()
	if ok {
		return schema, nil
	}
	data, err := json.Marshal(entry.Schema)
	if err != nil {
		return nil, fmt.Errorf("dashboard: marshal schema %s: %w", entry.WidgetType, err)
	}
	compiler := jsonschema.NewCompiler()
	name := entry.WidgetType + ".json"
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("dashboard: load schema %s: %w", entry.WidgetType, err)
	}
	compiled, err := compiler.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("dashboard: compile schema %s: %w", entry.WidgetType, err)
	}
	v.mu.Lock()
	v.compiled[entry.WidgetType] = compiled
	v.mu.Unlock()
	return compiled, nil
}

type noopConfigValidator struct{}

func (noopConfigValidator) Validate(CatalogEntry, map[string]any) error { return nil }
