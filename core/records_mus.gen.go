// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/varint"
)

var (
	sliceiuDoKr572UiY0xOEldΣdvQΞΞ = ord.NewSliceSer[string](ord.String)
)

var AvailabilityMUS = availabilityMUS{}

type availabilityMUS struct{}

func (s availabilityMUS) Marshal(v Availability, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s availabilityMUS) Unmarshal(bs []byte) (v Availability, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Availability(tmp)
	return
}

func (s availabilityMUS) Size(v Availability) (size int) {
	return varint.Int.Size(int(v))
}

func (s availabilityMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var EmployeeRecordMUS = employeeRecordMUS{}

type employeeRecordMUS struct{}

func (s employeeRecordMUS) Marshal(v EmployeeRecord, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Marshal(v.Skills, bs[n:])
	n += varint.Int.Marshal(v.ExperienceYears, bs[n:])
	n += sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Marshal(v.Projects, bs[n:])
	n += AvailabilityMUS.Marshal(v.Availability, bs[n:])
	n += ord.String.Marshal(v.Department, bs[n:])
	n += ord.String.Marshal(v.Specialization, bs[n:])
	return n + sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Marshal(v.Certifications, bs[n:])
}

func (s employeeRecordMUS) Unmarshal(bs []byte) (v EmployeeRecord, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Skills, n1, err = sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ExperienceYears, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Projects, n1, err = sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Availability, n1, err = AvailabilityMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Department, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Specialization, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Certifications, n1, err = sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s employeeRecordMUS) Size(v EmployeeRecord) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Size(v.Skills)
	size += varint.Int.Size(v.ExperienceYears)
	size += sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Size(v.Projects)
	size += AvailabilityMUS.Size(v.Availability)
	size += ord.String.Size(v.Department)
	size += ord.String.Size(v.Specialization)
	return size + sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Size(v.Certifications)
}

func (s employeeRecordMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = AvailabilityMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceiuDoKr572UiY0xOEldΣdvQΞΞ.Skip(bs[n:])
	n += n1
	return
}
