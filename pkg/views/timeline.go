package views

import "sort"

// SortByDateTimeDesc orders items newest-first by their date and time
// strings (YYYY-MM-DD and HH:MM, which sort correctly as text). The sort is
// stable: items with the same date and time keep their original relative
// order.
func SortByDateTimeDesc[T any](items []T, date func(T) string, clock func(T) string) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := date(out[i]), date(out[j])
		if di != dj {
			return di > dj
		}
		return clock(out[i]) > clock(out[j])
	})
	return out
}

// SortByDateTimeAsc orders items oldest-first, same key as
// SortByDateTimeDesc. Used for the per-day event agenda.
func SortByDateTimeAsc[T any](items []T, date func(T) string, clock func(T) string) []T {
	out := append([]T(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := date(out[i]), date(out[j])
		if di != dj {
			return di < dj
		}
		return clock(out[i]) < clock(out[j])
	})
	return out
}
