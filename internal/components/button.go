package components

import (
	"strings"

	"github.com/alexisbeaulieu97/clarivus/internal/variants"
)

// ButtonVariant is the visual variant of a button.
type ButtonVariant string

const (
	ButtonVariantPrimary   ButtonVariant = "primary"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantAccent    ButtonVariant = "accent"
	ButtonVariantSuccess   ButtonVariant = "success"
	ButtonVariantWarning   ButtonVariant = "warning"
	ButtonVariantError     ButtonVariant = "error"
	ButtonVariantGhost     ButtonVariant = "ghost"
	ButtonVariantOutline   ButtonVariant = "outline"
	ButtonVariantLink      ButtonVariant = "link"
)

// ButtonSize is the size of a button.
type ButtonSize string

const (
	ButtonSizeSmall      ButtonSize = "sm"
	ButtonSizeMedium     ButtonSize = "md"
	ButtonSizeLarge      ButtonSize = "lg"
	ButtonSizeExtraLarge ButtonSize = "xl"
	ButtonSizeIcon       ButtonSize = "icon"
)

const (
	// ButtonComponent is the catalog name of the button table.
	ButtonComponent = "button"
	// SpinnerClass is applied to the spinner element rendered while loading.
	SpinnerClass = "animate-spin"

	elementButton = "button"
	elementSlot   = "slot"
)

var buttonTable = variants.MustTable(variants.TableSpec{
	Component: ButtonComponent,
	Base:      "inline-flex items-center justify-center whitespace-nowrap rounded-md font-medium transition-all disabled:pointer-events-none disabled:opacity-50 outline-none focus-visible:ring-2 focus-visible:ring-primary-500 focus-visible:ring-offset-2 [&_svg]:pointer-events-none [&_svg]:shrink-0",
	Axes: []variants.AxisSpec{
		{
			Name:    "variant",
			Default: string(ButtonVariantPrimary),
			Values: []variants.ValueSpec{
				{Value: string(ButtonVariantPrimary), Classes: "bg-primary-500 text-white hover:bg-primary-600 active:bg-primary-700"},
				{Value: string(ButtonVariantSecondary), Classes: "border-2 border-primary-500 text-primary-500 bg-transparent hover:bg-primary-50 active:bg-primary-100"},
				{Value: string(ButtonVariantAccent), Classes: "bg-primary-700 text-white hover:bg-primary-800 active:bg-primary-900"},
				{Value: string(ButtonVariantSuccess), Classes: "bg-success-500 text-white hover:bg-success-600 active:bg-success-700"},
				{Value: string(ButtonVariantWarning), Classes: "bg-warning-500 text-gray-900 hover:bg-warning-600 active:bg-warning-700"},
				{Value: string(ButtonVariantError), Classes: "bg-error-500 text-white hover:bg-error-600 active:bg-error-700"},
				{Value: string(ButtonVariantGhost), Classes: "text-primary-500 hover:bg-primary-50 active:bg-primary-100"},
				{Value: string(ButtonVariantOutline), Classes: "border-2 border-gray-300 text-gray-700 hover:bg-gray-50 active:bg-gray-100"},
				{Value: string(ButtonVariantLink), Classes: "text-primary-500 underline-offset-4 hover:underline active:text-primary-700"},
			},
		},
		{
			Name:    "size",
			Default: string(ButtonSizeMedium),
			Values: []variants.ValueSpec{
				{Value: string(ButtonSizeSmall), Classes: "h-8 px-3 gap-2 text-sm [&_svg]:w-4 [&_svg]:h-4"},
				{Value: string(ButtonSizeMedium), Classes: "h-10 px-4 gap-2 text-base [&_svg]:w-5 [&_svg]:h-5"},
				{Value: string(ButtonSizeLarge), Classes: "h-11 px-6 gap-2 text-base [&_svg]:w-5 [&_svg]:h-5"},
				{Value: string(ButtonSizeExtraLarge), Classes: "h-12 px-8 gap-3 text-base [&_svg]:w-5 [&_svg]:h-5"},
				{Value: string(ButtonSizeIcon), Classes: "w-10 h-10 [&_svg]:w-5 [&_svg]:h-5"},
			},
		},
	},
	// Native disabled handles <button>; these cover slotted elements such as links.
	Disabled: "aria-disabled:pointer-events-none aria-disabled:opacity-50",
	Loading:  "cursor-wait",
})

// ButtonTable returns the variant table of the built-in button.
func ButtonTable() *variants.Table {
	return buttonTable
}

// ButtonProps configures one button render.
type ButtonProps struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	Loading  bool
	// AsChild renders the classes onto the caller's element instead of a <button>.
	AsChild bool
	Icon    string
	Label   string
	Class   string
}

// ButtonPlan is everything a render layer needs to draw a button.
type ButtonPlan struct {
	Element  string `json:"element"`
	Class    string `json:"class"`
	Disabled bool   `json:"disabled"`
	Spinner  bool   `json:"spinner"`
	Icon     string `json:"icon,omitempty"`
	Label    string `json:"label,omitempty"`

	Result variants.Result `json:"result"`
}

// Variant returns the variant the plan resolved to.
func (p ButtonPlan) Variant() ButtonVariant {
	return ButtonVariant(p.Result.Value("variant"))
}

// Size returns the size the plan resolved to.
func (p ButtonPlan) Size() ButtonSize {
	return ButtonSize(p.Result.Value("size"))
}

// ResolveButton resolves props against the button table.
func ResolveButton(props ButtonProps) (ButtonPlan, error) {
	result, err := variants.Resolve(buttonTable, props.config())
	if err != nil {
		return ButtonPlan{}, err
	}

	plan := ButtonPlan{
		Element:  elementButton,
		Class:    result.String(),
		Disabled: result.InteractionBlocked,
		Spinner:  result.ShowSpinner,
		Label:    props.Label,
		Result:   result,
	}
	if props.AsChild {
		plan.Element = elementSlot
	}
	if result.ShowIcon {
		plan.Icon = props.Icon
	}
	return plan, nil
}

func (p ButtonProps) config() variants.Config {
	return variants.Config{
		Values: map[string]string{
			"variant": string(p.Variant),
			"size":    string(p.Size),
		},
		Disabled: p.Disabled,
		Loading:  p.Loading,
		HasIcon:  strings.TrimSpace(p.Icon) != "",
		Class:    p.Class,
	}
}

// Button is a fluent builder over ButtonProps with a terminal preview.
type Button struct {
	props ButtonProps
	theme Theme
}

// NewButton creates a new button with the given label and props.
func NewButton(label string, props ButtonProps) *Button {
	props.Label = label
	return &Button{props: props, theme: DefaultTheme()}
}

// SimpleButton creates a primary, medium button.
func SimpleButton(label string) *Button {
	return NewButton(label, ButtonProps{Variant: ButtonVariantPrimary, Size: ButtonSizeMedium})
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.props.Variant = variant
	return b
}

// WithSize sets the button size
func (b *Button) WithSize(size ButtonSize) *Button {
	b.props.Size = size
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.props.Disabled = disabled
	return b
}

// WithLoading sets the button loading state
func (b *Button) WithLoading(loading bool) *Button {
	b.props.Loading = loading
	return b
}

// WithIcon sets the leading icon content
func (b *Button) WithIcon(icon string) *Button {
	b.props.Icon = icon
	return b
}

// WithClass appends caller override classes
func (b *Button) WithClass(class string) *Button {
	b.props.Class = class
	return b
}

// WithTheme replaces the preview theme
func (b *Button) WithTheme(theme Theme) *Button {
	b.theme = theme
	return b
}

// Props returns a copy of the configured props.
func (b *Button) Props() ButtonProps {
	return b.props
}

// Plan resolves the button.
func (b *Button) Plan() (ButtonPlan, error) {
	return ResolveButton(b.props)
}

// View renders the button preview, using the static spinner glyph while loading.
func (b *Button) View() (string, error) {
	plan, err := b.Plan()
	if err != nil {
		return "", err
	}
	return b.theme.RenderButton(plan, "")
}
