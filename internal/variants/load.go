package variants

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	clarivuserrors "github.com/alexisbeaulieu97/clarivus/pkg/errors"
)

// tableFile is the YAML document shape:
//
//	components:
//	  - name: badge
//	    base: inline-flex rounded-full
//	    variants:
//	      - name: tone
//	        default: neutral
//	        values:
//	          neutral: bg-gray-100 text-gray-700
//	          success: bg-success-100 text-success-700
//	    compounds:
//	      - when: {tone: success}
//	        classes: font-medium
//	    modifiers:
//	      disabled: opacity-50
type tableFile struct {
	Components []componentDecl `yaml:"components" validate:"required,min=1,dive"`
}

type componentDecl struct {
	Name      string         `yaml:"name" validate:"required,ident"`
	Base      string         `yaml:"base"`
	Variants  []axisDecl     `yaml:"variants" validate:"omitempty,dive"`
	Compounds []compoundDecl `yaml:"compounds" validate:"omitempty,dive"`
	Modifiers modifierDecl   `yaml:"modifiers"`
}

type axisDecl struct {
	Name    string        `yaml:"name" validate:"required,ident"`
	Default string        `yaml:"default" validate:"required"`
	Values  orderedValues `yaml:"values" validate:"required,min=1"`
}

type compoundDecl struct {
	When    map[string]string `yaml:"when" validate:"required,min=1"`
	Classes string            `yaml:"classes" validate:"required"`
}

type modifierDecl struct {
	Disabled string `yaml:"disabled"`
	Loading  string `yaml:"loading"`
}

// orderedValues keeps the document order of a value -> classes mapping.
type orderedValues []ValueSpec

// UnmarshalYAML walks the mapping node pairwise so declaration order survives decoding.
func (v *orderedValues) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: values must be a mapping of value to classes", node.Line)
	}
	out := make(orderedValues, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key, classes string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&classes); err != nil {
			return err
		}
		out = append(out, ValueSpec{Value: key, Classes: classes})
	}
	*v = out
	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	identPattern  = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	yamlLineRegex = regexp.MustCompile(`line (\d+)`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("ident", func(fl validator.FieldLevel) bool {
			return identPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// LoadTables reads a YAML table file from disk.
func LoadTables(path string) ([]*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, clarivuserrors.NewParseError(path, 0, err)
	}
	return ParseTables(path, data)
}

// ParseTables decodes, validates and compiles a YAML table document. path is only used in
// error messages.
func ParseTables(path string, data []byte) ([]*Table, error) {
	var doc tableFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, clarivuserrors.NewParseError(path, extractLine(err), err)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return nil, convertValidationError(err)
	}

	tables := make([]*Table, 0, len(doc.Components))
	for _, decl := range doc.Components {
		t, err := NewTable(decl.spec())
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func (d componentDecl) spec() TableSpec {
	spec := TableSpec{
		Component: d.Name,
		Base:      d.Base,
		Disabled:  d.Modifiers.Disabled,
		Loading:   d.Modifiers.Loading,
	}
	for _, a := range d.Variants {
		spec.Axes = append(spec.Axes, AxisSpec{
			Name:    a.Name,
			Default: a.Default,
			Values:  append([]ValueSpec(nil), a.Values...),
		})
	}
	for _, c := range d.Compounds {
		spec.Compounds = append(spec.Compounds, CompoundSpec{When: c.When, Classes: c.Classes})
	}
	return spec
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return clarivuserrors.NewValidationError(field, msg, err)
	}

	return clarivuserrors.NewValidationError("tables", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
