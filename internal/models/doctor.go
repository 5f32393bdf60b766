package models

// DoctorStatus is the lifecycle label of a doctor's profile.
type DoctorStatus string

const (
	DoctorVerified  DoctorStatus = "Verified"
	DoctorPending   DoctorStatus = "Pending"
	DoctorInReview  DoctorStatus = "In Review"
	DoctorRejected  DoctorStatus = "Rejected"
	DoctorSuspended DoctorStatus = "Suspended"
)

// DoctorStatuses lists every known status in display order.
var DoctorStatuses = []DoctorStatus{DoctorVerified, DoctorPending, DoctorInReview, DoctorRejected, DoctorSuspended}

func (s DoctorStatus) Valid() bool {
	for _, v := range DoctorStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Doctor is a read-only roster entry populated outside the dashboard.
type Doctor struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Specialization string       `json:"specialization"`
	Title          string       `json:"title"`
	BlogCount      int          `json:"blogCount"`
	Status         DoctorStatus `json:"status"`
}
