package create_reservation

import (
	"github.com/fleetops/TFS-ShiftService/internal/domain"
	"github.com/fleetops/TFS-ShiftService/pkg/types"
)

// findConflictingDates определяет, в какие из запрошенных дат интервал
// [start, end) пересекается с существующими подтвержденными бронированиями.
//
// Каждая дата проверяется независимо: учитываются только бронирования,
// чей набор дат содержит её. Пересечение считается по правилу
// закрытое-начало/открытый-конец (A.start < B.end && A.end > B.start),
// поэтому смены встык конфликтом не являются.
//
// Порядок результата совпадает с порядком запрошенных дат.
func findConflictingDates(
	dates []string,
	start, end types.TimeString,
	existing []*domain.Reservation,
) []string {
	conflicting := make([]string, 0)

	for _, date := range dates {
		for _, res := range existing {
			if !res.IsConfirmed() {
				continue
			}
			if !res.CoversDate(date) {
				continue
			}
			if res.OverlapsInterval(start, end) {
				conflicting = append(conflicting, date)
				break
			}
		}
	}

	return conflicting
}
