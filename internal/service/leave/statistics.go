package leave

import (
	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

var halfDay = decimal.NewFromFloat(0.5)

// ComputeMonthlyStatistics rolls approved requests up into the paid /
// unpaid / sandwich day totals for one month. Day weights come from the
// per-day rows so a half-day request contributes exactly 0.5; decimals
// keep the halves exact through the sum. Non-approved requests are
// skipped, callers pass whatever the month filter returned.
func ComputeMonthlyStatistics(employeeID, month string, requests []leave.LeaveRequest) leave.MonthlyLeaveStatistics {
	paid := decimal.Zero
	unpaid := decimal.Zero
	sandwich := decimal.Zero

	for _, req := range requests {
		if req.Status != leave.LeaveStatusApproved {
			continue
		}
		weight := decimal.NewFromInt(1)
		if req.LeaveDayType == leave.LeaveDayTypeHalf {
			weight = halfDay
		}
		for _, day := range req.Days {
			if day.Category == leave.LeaveCategoryPaid {
				paid = paid.Add(weight)
			} else {
				unpaid = unpaid.Add(weight)
			}
			if day.SandwichFlag {
				sandwich = sandwich.Add(weight)
			}
		}
	}

	return leave.MonthlyLeaveStatistics{
		EmployeeID:     employeeID,
		Month:          month,
		PaidLeaves:     paid.String(),
		UnpaidLeaves:   unpaid.String(),
		SandwichLeaves: sandwich.String(),
		TotalLeaves:    paid.Add(unpaid).String(),
	}
}
