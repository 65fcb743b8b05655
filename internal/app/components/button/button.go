package button

import (
	"github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"

	"github.com/FACorreiaa/mindful-miles/internal/app/components"
)

type Variant string
type Size string
type Type string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
	VariantGhost       Variant = "ghost"
	VariantLink        Variant = "link"
)

const (
	SizeDefault Size = "default"
	SizeSm      Size = "sm"
	SizeLg      Size = "lg"
)

const (
	TypeButton Type = "button"
	TypeSubmit Type = "submit"
)

type Props struct {
	ID         string
	Class      string
	Label      string
	Href       string
	Target     string
	Variant    Variant
	Size       Size
	Type       Type
	Disabled   bool
	Attributes components.Attrs
}

// Button renders a <button>, or an <a> when Href is set.
func Button(props ...Props) templ.Component {
	var p Props
	if len(props) > 0 {
		p = props[0]
	}

	return components.Component(func(h *components.HTML) {
		tag := "button"
		if p.Href != "" && !p.Disabled {
			tag = "a"
		}

		h.Raw("<" + tag)
		if p.ID != "" {
			h.Attr("id", p.ID)
		}
		if tag == "a" {
			h.URLAttr("href", p.Href)
			if p.Target != "" {
				h.Attr("target", p.Target)
				h.Attr("rel", "noopener noreferrer")
			}
		} else {
			t := p.Type
			if t == "" {
				t = TypeButton
			}
			h.Attr("type", string(t))
			if p.Disabled {
				h.Raw(" disabled")
			}
		}
		h.Attr("class", p.classes())
		h.Attrs(p.Attributes)
		h.Raw(">")
		h.Text(p.Label)
		h.Raw("</" + tag + ">")
	})
}

func (p Props) classes() string {
	return twmerge.Merge(
		"inline-flex items-center justify-center gap-2 rounded-md text-sm font-medium transition-colors focus-visible:outline-none focus-visible:ring-2 disabled:pointer-events-none disabled:opacity-50",
		p.variantClasses(),
		p.sizeClasses(),
		p.Class,
	)
}

func (p Props) variantClasses() string {
	switch p.Variant {
	case VariantDestructive:
		return "bg-destructive text-destructive-foreground hover:bg-destructive/90"
	case VariantOutline:
		return "border border-input bg-background hover:bg-accent hover:text-accent-foreground"
	case VariantGhost:
		return "hover:bg-accent hover:text-accent-foreground"
	case VariantLink:
		return "text-primary underline-offset-4 hover:underline"
	default:
		return "bg-emerald-600 text-white hover:bg-emerald-700"
	}
}

func (p Props) sizeClasses() string {
	switch p.Size {
	case SizeSm:
		return "h-9 px-3 py-1.5"
	case SizeLg:
		return "h-10 px-6 py-2.5"
	default:
		return "h-10 px-4 py-2"
	}
}
