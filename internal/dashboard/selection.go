package dashboard

// Selection is an ordered set of comment ids. Methods never mutate the receiver.
type Selection []string

func (s Selection) Contains(id string) bool {
	for _, v := range s {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle adds id, or removes it when already selected.
func (s Selection) Toggle(id string) Selection {
	if s.Contains(id) {
		return s.Remove(id)
	}
	out := append(Selection{}, s...)
	return append(out, id)
}

func (s Selection) Remove(id string) Selection {
	return Selection(remove([]string(s), id))
}

// ToggleAll clears the selection when every visible id is already selected,
// otherwise it selects exactly the visible ids.
func (s Selection) ToggleAll(visible []string) Selection {
	if len(visible) == 0 {
		return Selection{}
	}
	all := true
	for _, id := range visible {
		if !s.Contains(id) {
			all = false
			break
		}
	}
	if all {
		return Selection{}
	}
	return Selection(dedupe(visible))
}

func (s Selection) Clear() Selection {
	return Selection{}
}

// IDs returns the ids in insertion order. The result is never nil.
func (s Selection) IDs() []string {
	return append([]string{}, s...)
}
