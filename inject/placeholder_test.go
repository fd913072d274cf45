package inject

import (
	"reflect"
	"testing"
)

func TestPlaceholders(t *testing.T) {
	tests := []struct {
		name     string
		template string
		want     []Placeholder
	}{
		{
			name:     "no placeholders",
			template: "plain text without any tokens",
			want:     []Placeholder{},
		},
		{
			name:     "empty template",
			template: "",
			want:     []Placeholder{},
		},
		{
			name:     "single placeholder",
			template: "Hello %env:NAME%!",
			want: []Placeholder{
				{Text: "%env:NAME%", Tag: "env", Key: "NAME"},
			},
		},
		{
			name:     "repeated occurrences deduplicate",
			template: "%env:X% and %env:X% and %env:X%",
			want: []Placeholder{
				{Text: "%env:X%", Tag: "env", Key: "X"},
			},
		},
		{
			name:     "dedup is case-sensitive",
			template: "%env:NAME% %env:Name%",
			want: []Placeholder{
				{Text: "%env:NAME%", Tag: "env", Key: "NAME"},
				{Text: "%env:Name%", Tag: "env", Key: "Name"},
			},
		},
		{
			name:     "first-occurrence order",
			template: "%b:2% %a:1% %b:2% %c:3%",
			want: []Placeholder{
				{Text: "%b:2%", Tag: "b", Key: "2"},
				{Text: "%a:1%", Tag: "a", Key: "1"},
				{Text: "%c:3%", Tag: "c", Key: "3"},
			},
		},
		{
			name:     "adjacent placeholders",
			template: "%a:1%%b:2%",
			want: []Placeholder{
				{Text: "%a:1%", Tag: "a", Key: "1"},
				{Text: "%b:2%", Tag: "b", Key: "2"},
			},
		},
		{
			name:     "digits allowed in tag",
			template: "%ec2meta1:instance-id%",
			want: []Placeholder{
				{Text: "%ec2meta1:instance-id%", Tag: "ec2meta1", Key: "instance-id"},
			},
		},
		{
			name:     "key may contain colons and slashes",
			template: "%awsssm:/myapp/db:password%",
			want: []Placeholder{
				{Text: "%awsssm:/myapp/db:password%", Tag: "awsssm", Key: "/myapp/db:password"},
			},
		},
		{
			name:     "unterminated placeholder is not matched",
			template: "broken %env:NAME with no close",
			want:     []Placeholder{},
		},
		{
			name:     "uppercase tag is not matched",
			template: "%ENV:NAME%",
			want:     []Placeholder{},
		},
		{
			name:     "empty key is not matched",
			template: "%env:%",
			want:     []Placeholder{},
		},
		{
			name:     "stray percent signs around a real token",
			template: "100% %env:X% 50%",
			want: []Placeholder{
				{Text: "%env:X%", Tag: "env", Key: "X"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Placeholders(tt.template)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Placeholders(%q) = %v, want %v", tt.template, got, tt.want)
			}
		})
	}
}
