package version

import "testing"

func withBuild(t *testing.T, version, commit, date string) {
	t.Helper()
	oldV, oldC, oldD := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = oldV, oldC, oldD })
	Version, Commit, BuildDate = version, commit, date
}

func TestString(t *testing.T) {
	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{
			name:    "release build",
			version: "v0.3.0", commit: "0123456789abcdef", date: "2026-10-01",
			want: "Slime Survival v0.3.0 commit[0123456] built[2026-10-01]",
		},
		{
			name: "local build",
			want: "Slime Survival dev commit[unknown] built[unknown]",
		},
		{
			name:    "bad date",
			version: "v1", commit: "abc", date: "yesterday",
			want: "Slime Survival v1 commit[abc] built[unknown]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuild(t, tt.version, tt.commit, tt.date)
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWindowTitle(t *testing.T) {
	withBuild(t, "dev", "", "")
	if got := WindowTitle("Slime Survival"); got != "Slime Survival" {
		t.Errorf("dev title = %q", got)
	}

	withBuild(t, "v0.3.0", "", "")
	if got := WindowTitle("Slime Survival"); got != "Slime Survival v0.3.0" {
		t.Errorf("release title = %q", got)
	}
}

func TestGet_ParsesDate(t *testing.T) {
	withBuild(t, "v1", "", "2026-02-28")
	info := Get()
	if !info.DateValid || info.Built.Day() != 28 || info.Built.Month() != 2 {
		t.Errorf("Get() = %+v, want 2026-02-28 parsed", info)
	}
}
