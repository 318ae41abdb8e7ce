package leave

import (
	"testing"

	"github.com/hrms-suite/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func withDays(req leave.LeaveRequest, categories ...leave.LeaveCategory) leave.LeaveRequest {
	for i, cat := range categories {
		req.Days = append(req.Days, leave.LeaveRequestDay{
			Date:     req.From.AddDays(i),
			Category: cat,
		})
	}
	return req
}

func TestComputeMonthlyStatistics_PaidAndUnpaid(t *testing.T) {
	requests := []leave.LeaveRequest{
		withDays(request("l1", "2025-09-10", "2025-09-12", leave.LeaveStatusApproved),
			leave.LeaveCategoryPaid, leave.LeaveCategoryPaid, leave.LeaveCategoryUnpaid),
		withDays(request("l2", "2025-09-20", "2025-09-20", leave.LeaveStatusApproved),
			leave.LeaveCategoryPaid),
	}

	stats := ComputeMonthlyStatistics("EMP101", "2025-09", requests)
	assert.Equal(t, "EMP101", stats.EmployeeID)
	assert.Equal(t, "2025-09", stats.Month)
	assert.Equal(t, "3", stats.PaidLeaves)
	assert.Equal(t, "1", stats.UnpaidLeaves)
	assert.Equal(t, "0", stats.SandwichLeaves)
	assert.Equal(t, "4", stats.TotalLeaves)
}

func TestComputeMonthlyStatistics_HalfDayStaysExact(t *testing.T) {
	half := request("l1", "2025-09-10", "2025-09-10", leave.LeaveStatusApproved)
	half.LeaveDayType = leave.LeaveDayTypeHalf
	half = withDays(half, leave.LeaveCategoryPaid)

	stats := ComputeMonthlyStatistics("EMP101", "2025-09", []leave.LeaveRequest{half})
	assert.Equal(t, "0.5", stats.PaidLeaves)
	assert.Equal(t, "0.5", stats.TotalLeaves)
}

func TestComputeMonthlyStatistics_SandwichFlagged(t *testing.T) {
	req := withDays(request("l1", "2025-09-10", "2025-09-12", leave.LeaveStatusApproved),
		leave.LeaveCategoryPaid, leave.LeaveCategoryPaid, leave.LeaveCategoryPaid)
	req.Days[1].SandwichFlag = true

	stats := ComputeMonthlyStatistics("EMP101", "2025-09", []leave.LeaveRequest{req})
	assert.Equal(t, "1", stats.SandwichLeaves)
	assert.Equal(t, "3", stats.TotalLeaves)
}

func TestComputeMonthlyStatistics_SkipsNonApproved(t *testing.T) {
	requests := []leave.LeaveRequest{
		withDays(request("l1", "2025-09-10", "2025-09-10", leave.LeaveStatusPending), leave.LeaveCategoryPaid),
		withDays(request("l2", "2025-09-11", "2025-09-11", leave.LeaveStatusRejected), leave.LeaveCategoryPaid),
	}

	stats := ComputeMonthlyStatistics("EMP101", "2025-09", requests)
	assert.Equal(t, "0", stats.PaidLeaves)
	assert.Equal(t, "0", stats.TotalLeaves)
}

func TestComputeMonthlyStatistics_Empty(t *testing.T) {
	stats := ComputeMonthlyStatistics("EMP101", "2025-09", nil)
	assert.Equal(t, "0", stats.TotalLeaves)
}
