package domain

import "testing"

func TestAllowedUpload(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		mimeType string
		want     bool
	}{
		{"pdf", "passport.pdf", "application/pdf", true},
		{"jpeg", "photo.JPG", "image/jpeg", true},
		{"png", "scan.png", "image/png", true},
		{"docx", "form.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", true},
		{"mixed-case mime", "scan.png", "IMAGE/PNG", true},
		{"executable", "tool.exe", "application/pdf", false},
		{"no extension", "README", "application/pdf", false},
		{"pdf extension, html type", "page.pdf", "text/html", false},
		{"allowed type, wrong extension", "photo.svg", "image/png", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AllowedUpload(tc.fileName, tc.mimeType); got != tc.want {
				t.Fatalf("AllowedUpload(%q, %q) = %v, want %v", tc.fileName, tc.mimeType, got, tc.want)
			}
		})
	}
}

func TestValidRole(t *testing.T) {
	if !ValidRole(RoleAdmin) || !ValidRole(RoleUser) {
		t.Fatalf("expected admin and user to be valid roles")
	}
	for _, role := range []string{"", "root", "Admin", "superuser"} {
		if ValidRole(role) {
			t.Fatalf("expected %q to be invalid", role)
		}
	}
}
