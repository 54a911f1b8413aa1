package models

var (
	Departments = []string{"HR", "Finance", "Engineering", "Marketing", "Sales", "IT"}
	Genders     = []string{"Male", "Female", "Other"}
)

// Mode is the navigation state the form is opened with.
type Mode string

const (
	ModeAdd  Mode = "add"
	ModeEdit Mode = "edit"
	ModeView Mode = "view"
)

func ParseMode(raw string) (Mode, bool) {
	switch Mode(raw) {
	case ModeAdd, ModeEdit, ModeView:
		return Mode(raw), true
	case "":
		return ModeAdd, true
	default:
		return "", false
	}
}
