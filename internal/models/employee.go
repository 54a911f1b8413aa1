package models

// Employee is one persisted record. JSON names follow the stored collection format.
type Employee struct {
	EmpID       int    `json:"empId"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	City        string `json:"city"`
	State       string `json:"state"`
	Designation string `json:"designation,omitempty"`
	Country     string `json:"country,omitempty"`
	EmailID     string `json:"emailId"`
	ContactNo   string `json:"contactNo"`
	Department  string `json:"Department"`
	Address     string `json:"Address"`
	Pincode     string `json:"Pincode"`
}

// Input carries the form values for a create or a full edit.
type Input struct {
	Name        string `json:"name" validate:"required,min=2,max=50,personname"`
	Gender      string `json:"gender" validate:"omitempty,oneof=Male Female Other"`
	City        string `json:"city"`
	State       string `json:"state"`
	Designation string `json:"designation"`
	Country     string `json:"country"`
	EmailID     string `json:"emailId" validate:"required,mailbox"`
	ContactNo   string `json:"contactNo" validate:"required,phone"`
	Department  string `json:"Department" validate:"omitempty,oneof=HR Finance Engineering Marketing Sales IT"`
	Address     string `json:"Address"`
	Pincode     string `json:"Pincode" validate:"required,min=6"`
}

// Patch is an update payload. EmailID locates the record; nil fields are left alone.
type Patch struct {
	EmailID     string  `json:"emailId"`
	Name        *string `json:"name"`
	Gender      *string `json:"gender"`
	City        *string `json:"city"`
	State       *string `json:"state"`
	Designation *string `json:"designation"`
	Country     *string `json:"country"`
	ContactNo   *string `json:"contactNo"`
	Department  *string `json:"Department"`
	Address     *string `json:"Address"`
	Pincode     *string `json:"Pincode"`
}

func (in Input) Record(id int) Employee {
	return Employee{
		EmpID:       id,
		Name:        in.Name,
		Gender:      in.Gender,
		City:        in.City,
		State:       in.State,
		Designation: in.Designation,
		Country:     in.Country,
		EmailID:     in.EmailID,
		ContactNo:   in.ContactNo,
		Department:  in.Department,
		Address:     in.Address,
		Pincode:     in.Pincode,
	}
}

func InputFrom(e Employee) Input {
	return Input{
		Name:        e.Name,
		Gender:      e.Gender,
		City:        e.City,
		State:       e.State,
		Designation: e.Designation,
		Country:     e.Country,
		EmailID:     e.EmailID,
		ContactNo:   e.ContactNo,
		Department:  e.Department,
		Address:     e.Address,
		Pincode:     e.Pincode,
	}
}

// PatchFrom turns a full form into a patch that sets every mutable field.
func PatchFrom(in Input) Patch {
	return Patch{
		EmailID:     in.EmailID,
		Name:        &in.Name,
		Gender:      &in.Gender,
		City:        &in.City,
		State:       &in.State,
		Designation: &in.Designation,
		Country:     &in.Country,
		ContactNo:   &in.ContactNo,
		Department:  &in.Department,
		Address:     &in.Address,
		Pincode:     &in.Pincode,
	}
}

// Apply returns e with the present patch fields copied over. EmpID and EmailID never change.
func (p Patch) Apply(e Employee) Employee {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&e.Name, p.Name)
	set(&e.Gender, p.Gender)
	set(&e.City, p.City)
	set(&e.State, p.State)
	set(&e.Designation, p.Designation)
	set(&e.Country, p.Country)
	set(&e.ContactNo, p.ContactNo)
	set(&e.Department, p.Department)
	set(&e.Address, p.Address)
	set(&e.Pincode, p.Pincode)
	return e
}

// Fields lists the JSON names of the fields present in the patch, email included.
func (p Patch) Fields() []string {
	fields := []string{"emailId"}
	add := func(name string, v *string) {
		if v != nil {
			fields = append(fields, name)
		}
	}
	add("name", p.Name)
	add("gender", p.Gender)
	add("city", p.City)
	add("state", p.State)
	add("designation", p.Designation)
	add("country", p.Country)
	add("contactNo", p.ContactNo)
	add("Department", p.Department)
	add("Address", p.Address)
	add("Pincode", p.Pincode)
	return fields
}
