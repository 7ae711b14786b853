package feed

import "github.com/qyinm/placetui/types"

// Selection tracks the item shown in the detail modal. The zero value is closed.
type Selection struct {
	item types.ViewItem
	open bool
}

// Open shows item, replacing whatever was open.
func (s *Selection) Open(item types.ViewItem) {
	s.item = item
	s.open = true
}

// Close hides the modal and drops the held item.
func (s *Selection) Close() {
	s.item = types.ViewItem{}
	s.open = false
}

// IsOpen reports whether an item is shown.
func (s Selection) IsOpen() bool { return s.open }

// Current returns the open item.
func (s Selection) Current() (types.ViewItem, bool) {
	return s.item, s.open
}
