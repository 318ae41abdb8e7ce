package leave

import (
	"fmt"
	"strings"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-suite/hrms-backend-go/internal/pkg/dateutil"
)

// ExpandToDailyLeave flattens an Approved request into one entry per
// calendar day. Half-day single-date requests emit a single entry
// tagged with the session. Non-approved requests expand to nothing;
// they are kept for display and audit only.
func ExpandToDailyLeave(req leave.LeaveRequest) ([]leave.DailyLeave, error) {
	if req.Status != leave.LeaveStatusApproved {
		return nil, nil
	}

	dates, err := dateutil.ExpandRangeInclusive(req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("failed to expand leave %s: %w", req.ID, err)
	}

	categories := make(map[string]leave.LeaveCategory, len(req.Days))
	for _, day := range req.Days {
		categories[day.Date.String()] = day.Category
	}

	daily := make([]leave.DailyLeave, 0, len(dates))
	for _, d := range dates {
		entry := leave.DailyLeave{
			EmployeeID: req.EmployeeID,
			Date:       d,
			LeaveType:  req.LeaveType,
			Category:   leave.LeaveCategoryUnpaid,
		}
		if cat, ok := categories[d.String()]; ok {
			entry.Category = cat
		}
		if req.LeaveDayType == leave.LeaveDayTypeHalf {
			entry.HalfDaySession = req.HalfDaySession
		}
		daily = append(daily, entry)
	}
	return daily, nil
}

// FilterByMonthStatusType applies the month/status/type predicates.
// Empty or "All" values bypass the corresponding predicate. Month is
// matched against the From date only: a request spanning two months
// belongs to its starting month. Dashboards group requests the same
// way, so monthly counts stay consistent.
func FilterByMonthStatusType(requests []leave.LeaveRequest, month, status, leaveType string) []leave.LeaveRequest {
	out := make([]leave.LeaveRequest, 0, len(requests))
	for _, req := range requests {
		if !monthMatches(req, month) {
			continue
		}
		if !sentinelMatches(status, string(req.Status)) {
			continue
		}
		if !sentinelMatches(leaveType, string(req.LeaveType)) {
			continue
		}
		out = append(out, req)
	}
	return out
}

func monthMatches(req leave.LeaveRequest, month string) bool {
	if month == "" || month == leave.StatusAll {
		return true
	}
	return dateutil.MonthKey(req.From) == month
}

func sentinelMatches(filter, value string) bool {
	if filter == "" || filter == leave.StatusAll {
		return true
	}
	return strings.EqualFold(filter, value)
}

// LeaveDayCount returns the day weight of a request: 0.5 for a
// half-day, otherwise the inclusive day span.
func LeaveDayCount(req leave.LeaveRequest) float64 {
	if req.LeaveDayType == leave.LeaveDayTypeHalf {
		return 0.5
	}
	return float64(req.From.DaysUntil(req.To) + 1)
}
