package guestcreate

type Output struct {
	Message string `json:"message"`
}

// profileSchema accepts any non-empty subset of the guest form fields.
const profileSchema = `{
	"type": "object",
	"minProperties": 1,
	"additionalProperties": false,
	"properties": {
		"NameOfYour":      {"type": "string", "maxLength": 255},
		"MobileNumber":    {"type": "string", "maxLength": 32, "pattern": "^[0-9+() -]*$"},
		"DOB":             {"type": "string", "maxLength": 32},
		"Email":           {"type": "string", "maxLength": 255, "pattern": "^$|^[^@\\s]+@[^@\\s]+$"},
		"MarriedStatus":   {"type": "string", "maxLength": 32},
		"SpousesName":     {"type": "string", "maxLength": 255},
		"SpousesDOB":      {"type": "string", "maxLength": 32},
		"AnniversaryDate": {"type": "string", "maxLength": 32},
		"Child1":          {"type": "string", "maxLength": 255},
		"Child2":          {"type": "string", "maxLength": 255},
		"child3":          {"type": "string", "maxLength": 255},
		"child4":          {"type": "string", "maxLength": 255},
		"Child1DOB":       {"type": "string", "maxLength": 32},
		"Child2DOB":       {"type": "string", "maxLength": 32},
		"Child3DOB":       {"type": "string", "maxLength": 32},
		"Child4DOB":       {"type": "string", "maxLength": 32},
		"Address":         {"type": "string", "maxLength": 1024},
		"City":            {"type": "string", "maxLength": 255}
	}
}`
