package core

import (
	"errors"
	"testing"
)

func fullCourse() CourseInfo {
	return CourseInfo{
		ID:          "1",
		DisplayName: "Inteligencia Artificial",
		Details: map[DetailKey]string{
			DetailSchedule:      "Sábados 8am-12pm",
			DetailCost:          "$500.000 COP",
			DetailRequirements:  "Bachillerato",
			DetailDuration:      "4 meses",
			DetailCertification: "Certificado digital",
		},
	}
}

func TestCourseDetail(t *testing.T) {
	c := fullCourse()

	text, err := c.Detail(DetailCost)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if text != "$500.000 COP" {
		t.Errorf("Detail = %q", text)
	}
}

func TestCourseDetail_UnknownKey(t *testing.T) {
	_, err := fullCourse().Detail("profesores")
	if !errors.Is(err, ErrUnknownDetail) {
		t.Errorf("err = %v, want ErrUnknownDetail", err)
	}
}

func TestCourseDetail_MissingSection(t *testing.T) {
	c := fullCourse()
	delete(c.Details, DetailDuration)

	_, err := c.Detail(DetailDuration)
	if !errors.Is(err, ErrCourseDataIncomplete) {
		t.Errorf("err = %v, want ErrCourseDataIncomplete", err)
	}

	c.Details[DetailDuration] = ""
	_, err = c.Detail(DetailDuration)
	if !errors.Is(err, ErrCourseDataIncomplete) {
		t.Errorf("empty section: err = %v, want ErrCourseDataIncomplete", err)
	}
}

func TestCourseValidate(t *testing.T) {
	if err := fullCourse().Validate(); err != nil {
		t.Errorf("full course must validate: %v", err)
	}

	c := fullCourse()
	delete(c.Details, DetailCertification)
	if err := c.Validate(); !errors.Is(err, ErrCourseDataIncomplete) {
		t.Errorf("err = %v, want ErrCourseDataIncomplete", err)
	}
}
