package detect

import (
	"testing"

	"adc/internal/analysis"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func TestIsLikelyArchitectural(t *testing.T) {
	tests := []struct {
		name    string
		partial *analysis.PartialChangeAnalysis
		want    bool
	}{
		{
			name:    "nil analysis never triggers",
			partial: nil,
			want:    false,
		},
		{
			name:    "empty analysis never triggers",
			partial: &analysis.PartialChangeAnalysis{},
			want:    false,
		},
		{
			name: "three affected files suffice",
			partial: &analysis.PartialChangeAnalysis{
				AffectedFiles: []string{"a.go", "b.go", "c.go"},
			},
			want: true,
		},
		{
			name: "two affected files do not",
			partial: &analysis.PartialChangeAnalysis{
				AffectedFiles: []string{"a.go", "b.go"},
			},
			want: false,
		},
		{
			name: "ten concepts suffice",
			partial: &analysis.PartialChangeAnalysis{
				AffectedConcepts: []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"},
			},
			want: true,
		},
		{
			name: "project scope alone suffices with all other fields absent",
			partial: &analysis.PartialChangeAnalysis{
				Scope: analysis.ScopeProject,
			},
			want: true,
		},
		{
			name: "module scope alone does not",
			partial: &analysis.PartialChangeAnalysis{
				Scope: analysis.ScopeModule,
			},
			want: false,
		},
		{
			name: "five dependents suffice",
			partial: &analysis.PartialChangeAnalysis{
				DependentsCount: intPtr(5),
			},
			want: true,
		},
		{
			name: "four dependents do not",
			partial: &analysis.PartialChangeAnalysis{
				DependentsCount: intPtr(4),
			},
			want: false,
		},
		{
			name: "any pattern change suffices",
			partial: &analysis.PartialChangeAnalysis{
				PatternChanges: []string{"observer"},
			},
			want: true,
		},
		{
			name: "breaking change suffices",
			partial: &analysis.PartialChangeAnalysis{
				BreakingChanges: boolPtr(true),
			},
			want: true,
		},
		{
			name: "explicit non-breaking does not",
			partial: &analysis.PartialChangeAnalysis{
				BreakingChanges: boolPtr(false),
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsLikelyArchitectural(tt.partial); got != tt.want {
				t.Errorf("IsLikelyArchitectural() = %v, want %v", got, tt.want)
			}
		})
	}
}
