package fileseq

import "sort"

// groupKey identifies a FindSequence bucket: filenames sharing prefix and
// suffix but whose padding disagrees fall into successive counters
// instead of being forced together.
type groupKey struct {
	prefix    string
	suffix    string
	collision int
}

// FindSequence groups an unordered list of filenames into recognized
// FileSequences, returning any names that are not part of a recognized
// sequence (including filenames that are themselves multi-frame specs,
// such as "shot.1-10.txt", which cannot represent a single file).
//
// Output sequences are ordered by group key (prefix, then suffix, then
// collision counter); the non-sequence list preserves input order.
func FindSequence(filenames []string) ([]FileSequence, []string) {
	var nonSequences []string
	groups := make(map[groupKey][]FileSequence)
	var keys []groupKey

	for _, name := range filenames {
		fs, err := ParseFileSequence(name)
		if err != nil {
			nonSequences = append(nonSequences, name)
			continue
		}
		if fs.Size() != 1 {
			nonSequences = append(nonSequences, name)
			continue
		}

		key := groupKey{prefix: fs.prefix, suffix: fs.suffix}
		for {
			members, exists := groups[key]
			if !exists {
				groups[key] = []FileSequence{fs}
				keys = append(keys, key)
				break
			}
			groupPad := members[0].frameSet.Padding()
			for _, m := range members[1:] {
				groupPad = CombinePadding(groupPad, m.frameSet.Padding())
			}
			if CombinePadding(groupPad, fs.frameSet.Padding()).IsValid() {
				groups[key] = append(members, fs)
				break
			}
			key.collision++
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		if a.prefix != b.prefix {
			return a.prefix < b.prefix
		}
		if a.suffix != b.suffix {
			return a.suffix < b.suffix
		}
		return a.collision < b.collision
	})

	sequences := make([]FileSequence, 0, len(keys))
	for _, key := range keys {
		members := groups[key]
		merged, err := members[0].MergeMultiple(members[1:])
		if err != nil {
			// Members of a group are constructed to share prefix/suffix and
			// combine-compatible padding, so this should not happen.
			nonSequences = append(nonSequences, members[0].String())
			continue
		}
		sequences = append(sequences, merged)
	}

	return sequences, nonSequences
}
