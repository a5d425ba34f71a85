package locale

import "golang.org/x/text/language"

const nbsp = "\u00a0"

// placement describes where a currency symbol goes relative to the digits.
type placement struct {
	after bool   // symbol follows the digits
	sep   string // between digits and symbol
}

// placements is keyed by full tag first, then by base language. Anything
// missing uses a leading symbol with no separator ("$1,234", "￥1,234").
var placements = map[string]placement{
	"de":    {after: true, sep: nbsp},
	"de-CH": {after: false, sep: nbsp},
	"fr":    {after: true, sep: nbsp},
	"es":    {after: true, sep: nbsp},
	"it":    {after: true, sep: nbsp},
	"pt":    {after: false, sep: nbsp},
	"pt-PT": {after: true, sep: nbsp},
	"nl":    {after: false, sep: nbsp},
	"pl":    {after: true, sep: nbsp},
	"cs":    {after: true, sep: nbsp},
	"ru":    {after: true, sep: nbsp},
	"uk":    {after: true, sep: nbsp},
	"sv":    {after: true, sep: nbsp},
	"nb":    {after: true, sep: nbsp},
	"da":    {after: true, sep: nbsp},
	"fi":    {after: true, sep: nbsp},
	"hu":    {after: true, sep: nbsp},
	"ro":    {after: true, sep: nbsp},
}

func placementFor(tag language.Tag) placement {
	if p, ok := placements[tag.String()]; ok {
		return p
	}
	base, _ := tag.Base()
	if p, ok := placements[base.String()]; ok {
		return p
	}
	return placement{}
}
