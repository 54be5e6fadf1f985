package dashboard

import "testing"

func TestJSONSchemaValidatorRejectsInvalidPayload(t *testing.T) {
	validator := NewJSONSchemaValidator()
	entry := CatalogEntry{
		WidgetType: "demo.widget.string_required",
		Schema: map[string]any{
			"type":     "object",
			"required": []string{"name"},
			"properties": map[string]any{
				"name": map[string]any{"type": "string", "minLength": 1},
			},
		},
	}
	if err := validator.Validate(entry, map[string]any{"name": "Dashboard"}); err != nil {
		t.Fatalf("expected valid config, got %v", err)
	}
	if err := validator.Validate(entry, map[string]any{}); err == nil {
		t.Fatalf("expected validation error for missing name")
	}
}

func TestJSONSchemaValidatorAcceptsSchemalessEntries(t *testing.T) {
	validator := NewJSONSchemaValidator()
	entry := CatalogEntry{WidgetType: "demo.widget.freeform"}
	if err := validator.Validate(entry, map[string]any{"anything": true}); err != nil {
		t.Fatalf("schemaless entry should accept anything, got %v", err)
	}
}

func TestJSONSchemaValidatorCachesCompiledSchemas(t *testing.T) {
	validator := NewJSONSchemaValidator()
	entry := CatalogEntry{
		WidgetType: "demo.widget.cache",
		Schema:     map[string]any{"type": "object"},
	}
	if err := validator.Validate(entry, nil); err != nil {
		t.Fatalf("unexpected error validating config: %v", err)
	}
	if len(validator.compiled) != 1 {
		t.Fatalf("expected schema cache to contain 1 entry, got %d", len(validator.compiled))
	}
	if err := validator.Validate(entry, map[string]any{}); err != nil {
		t.Fatalf("unexpected error on cached validation: %v", err)
	}
	if len(validator.compiled) != 1 {
		t.Fatalf("expected schema cache to remain 1 entry, got %d", len(validator.compiled))
	}
}

func TestJSONSchemaValidatorNormalizesGoValues(t *testing.T) {
	validator := NewJSONSchemaValidator()
	entry := CatalogEntry{
		WidgetType: "demo.widget.numeric",
		Schema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"limit": map[string]any{"type": "integer", "minimum": 1},
			},
		},
	}
	// Plain Go ints survive the JSON round-trip as numbers.
	if err := validator.Validate(entry, map[string]any{"limit": 5}); err != nil {
		t.Fatalf("expected int config accepted, got %v", err)
	}
	if err := validator.Validate(entry, map[string]any{"limit": 0}); err == nil {
		t.Fatalf("expected minimum violation")
	}
}
