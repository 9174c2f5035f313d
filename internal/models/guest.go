package models

// GuestProfile is a guest contact/demographic record. JSON names follow the
// booking widget's form fields and are accepted as JSON or form data.
type GuestProfile struct {
	ID              int64  `json:"id,omitempty" form:"-"`
	NameOfYour      string `json:"NameOfYour" form:"NameOfYour"`
	MobileNumber    string `json:"MobileNumber" form:"MobileNumber"`
	DOB             string `json:"DOB" form:"DOB"`
	Email           string `json:"Email" form:"Email"`
	MarriedStatus   string `json:"MarriedStatus" form:"MarriedStatus"`
	SpousesName     string `json:"SpousesName" form:"SpousesName"`
	SpousesDOB      string `json:"SpousesDOB" form:"SpousesDOB"`
	AnniversaryDate string `json:"AnniversaryDate" form:"AnniversaryDate"`
	Child1          string `json:"Child1" form:"Child1"`
	Child2          string `json:"Child2" form:"Child2"`
	Child3          string `json:"child3" form:"child3"`
	Child4          string `json:"child4" form:"child4"`
	Child1DOB       string `json:"Child1DOB" form:"Child1DOB"`
	Child2DOB       string `json:"Child2DOB" form:"Child2DOB"`
	Child3DOB       string `json:"Child3DOB" form:"Child3DOB"`
	Child4DOB       string `json:"Child4DOB" form:"Child4DOB"`
	Address         string `json:"Address" form:"Address"`
	City            string `json:"City" form:"City"`
}
