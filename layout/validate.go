package layout

import (
	"fmt"
	"unicode/utf8"

	"flatfile-codec/errors"
	"flatfile-codec/internal/common"
	"flatfile-codec/internal/diagnostic"
	"flatfile-codec/internal/match"
)

// maxTypeSuggestionDistance bounds how far a misspelled type may be from a
// supported one to be suggested.
const maxTypeSuggestionDistance = 2

// Validate validates a list of field specs. This is a structural check only;
// row values are validated by the codec at encode time.
func Validate(specs []FieldSpec) *diagnostic.Diagnostics {
	return validate("", specs)
}

// ValidateLayout validates a layout, tagging diagnostics with its name.
func ValidateLayout(l *Layout) *diagnostic.Diagnostics {
	if l == nil {
		res := &diagnostic.Diagnostics{}
		res.AddError("layout_is_nil", "layout is nil", "", "")

		return res
	}

	res := validate(l.Name, l.Fields)
	res.Merge(validateHeader(l))

	if res.IsValid() {
		res.AddInfo("width", fmt.Sprintf("record width is %d characters", l.Width()), l.Name, "")
	}

	return res
}

// Check validates specs and returns the first error as a config error, or
// nil. The full diagnostic text is attached as the cause when there is more
// than one error.
func Check(specs []FieldSpec) error {
	res := Validate(specs)
	if res.IsValid() {
		return nil
	}

	first, _ := common.First(res.Errors)

	b := errors.New(errors.PhaseConfig, errors.KindConfig).Detail(first.Message)
	if first.Field != "" {
		b.Path(first.Field)
	}

	if common.IsMultiple(res.Errors) {
		b.Cause(res.Error())
	}

	return b.Build()
}

func validate(name string, specs []FieldSpec) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if common.IsEmpty(specs) {
		res.AddError("empty_layout", "mapping is empty", name, "")
		return res
	}

	seen := map[string]struct{}{}

	for i := range specs {
		f := &specs[i]

		field := f.Name
		if field == "" {
			field = fmt.Sprintf("#%d", i)
			res.AddError("missing_name", "field spec must have a name", name, field)
		} else if _, dup := seen[f.Name]; dup {
			res.AddError("duplicate_name", fmt.Sprintf("duplicate field name %q", f.Name), name, field)
		}

		seen[f.Name] = struct{}{}

		validateAmbiguity(res, name, specs[:i], f)

		validateSize(res, name, field, f)
		validateType(res, name, field, f)
		validatePadding(res, name, field, f)
		validateTypeOptions(res, name, field, f)
		validateEnum(res, name, field, f)
	}

	return res
}

// validateHeader checks the layout document itself.
func validateHeader(l *Layout) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if l.Version != "" && l.Version != DefaultVersion {
		res.AddWarning("unknown_version",
			fmt.Sprintf("layout version %q is not known, reading it as version %s", l.Version, DefaultVersion),
			l.Name, "")
	}

	return res
}

// validateAmbiguity warns when a name differs from an earlier one only in
// case or separators, since both would bind the same struct member.
func validateAmbiguity(res *diagnostic.Diagnostics, layoutName string, before []FieldSpec, f *FieldSpec) {
	if f.Name == "" {
		return
	}

	for _, prev := range before {
		if prev.Name != "" && prev.Name != f.Name && match.Similarity(prev.Name, f.Name) == 1.0 {
			res.AddWarning("ambiguous_name",
				fmt.Sprintf("field name %q matches %q when binding structs", f.Name, prev.Name),
				layoutName, f.Name)
		}
	}
}

// validateSize validates that the field occupies a positive width.
func validateSize(res *diagnostic.Diagnostics, layoutName, field string, f *FieldSpec) {
	if f.Size <= 0 {
		res.AddError("invalid_size", "map size must be greater than 0", layoutName, field)
	}
}

// validateType validates the declared type, suggesting the closest
// supported name for typos.
func validateType(res *diagnostic.Diagnostics, layoutName, field string, f *FieldSpec) {
	if f.Type.IsValid() {
		return
	}

	names := make([]string, len(SupportedTypes))
	for i, t := range SupportedTypes {
		names[i] = string(t)
	}

	res.AddError("unsupported_type",
		fmt.Sprintf("type %q is not supported", string(f.Type)),
		layoutName, field,
		match.Suggest(string(f.Type), names, maxTypeSuggestionDistance)...)
}

// validatePadding validates the padding position and symbol.
func validatePadding(res *diagnostic.Diagnostics, layoutName, field string, f *FieldSpec) {
	if !f.PaddingPosition.IsValid() && f.PaddingPosition != "" {
		res.AddError("invalid_padding_position",
			fmt.Sprintf("padding position %q not allowed", string(f.PaddingPosition)),
			layoutName, field)
	}

	if utf8.RuneCountInString(f.PaddingSymbol) > 1 {
		res.AddError("invalid_padding_symbol", "paddingSymbol cannot have length > 1", layoutName, field)
	}
}

// validateTypeOptions reports options that do not apply to the field type.
func validateTypeOptions(res *diagnostic.Diagnostics, layoutName, field string, f *FieldSpec) {
	if f.Precision < 0 {
		res.AddError("negative_precision", "precision must not be negative", layoutName, field)
	}

	if !f.Type.IsValid() {
		return
	}

	if f.Type != TypeFloat {
		if f.Precision != 0 {
			res.AddWarning("precision_ignored", "precision only applies to float fields", layoutName, field)
		}

		if f.DotNotation {
			res.AddWarning("dot_notation_ignored", "dotNotation only applies to float fields", layoutName, field)
		}
	}

	if f.Type != TypeDate && f.Format != nil {
		res.AddWarning("format_ignored", "format only applies to date fields", layoutName, field)
	}

	if f.Type != TypeString && f.Straight {
		res.AddWarning("straight_ignored", "straight only applies to string fields", layoutName, field)
	}
}

// validateEnum warns about keys that can never match a slice of the field.
func validateEnum(res *diagnostic.Diagnostics, layoutName, field string, f *FieldSpec) {
	if f.Size <= 0 {
		return
	}

	for _, k := range f.Enum.Keys() {
		if utf8.RuneCountInString(k) != f.Size {
			res.AddWarning("enum_key_width",
				fmt.Sprintf("enum key %q is not %d characters wide and can never match", k, f.Size),
				layoutName, field)
		}
	}
}
