package provider

import "github.com/nvoronova/trackerd/internal/storage"

// diff computes the minimal insert/delete position lists between two
// snapshots, matching rows by tracker id. Rows on the longest common id
// subsequence are unchanged; everything else is reported as a delete at its
// old position or an insert at its new one, so a reordered row always
// surfaces as delete+insert rather than disappearing into a positional
// no-op.
func diff(old, next []storage.TrackerRow) Update {
	oldIDs := make([]string, len(old))
	for i, row := range old {
		oldIDs[i] = row.Tracker.ID
	}
	nextIDs := make([]string, len(next))
	for i, row := range next {
		nextIDs[i] = row.Tracker.ID
	}

	keptOld, keptNew := commonSubsequence(oldIDs, nextIDs)

	var update Update
	for i := range oldIDs {
		if !keptOld[i] {
			update.Deleted = append(update.Deleted, i)
		}
	}
	for i := range nextIDs {
		if !keptNew[i] {
			update.Inserted = append(update.Inserted, i)
		}
	}
	return update
}

// commonSubsequence marks the positions of a longest common subsequence of
// the two id slices. Snapshot sizes are user-habit-list sized, so the
// quadratic table is fine.
func commonSubsequence(a, b []string) (keptA, keptB []bool) {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else if lcs[i+1][j] >= lcs[i][j+1] {
				lcs[i][j] = lcs[i+1][j]
			} else {
				lcs[i][j] = lcs[i][j+1]
			}
		}
	}

	keptA = make([]bool, n)
	keptB = make([]bool, m)
	for i, j := 0, 0; i < n && j < m; {
		switch {
		case a[i] == b[j]:
			keptA[i] = true
			keptB[j] = true
			i++
			j++
		case lcs[i+1][j] >= lcs[i][j+1]:
			i++
		default:
			j++
		}
	}
	return keptA, keptB
}
