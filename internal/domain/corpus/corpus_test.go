package corpus

import (
	"reflect"
	"testing"

	"jobboard/internal/domain/job"
	"jobboard/internal/domain/seeker"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("Node.js, React & AWS-Lambda!")
	want := Document{"node", "js", "react", "aws", "lambda"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTokenize_Blank(t *testing.T) {
	if d := Tokenize("  \t ... \n"); !d.Empty() {
		t.Fatalf("expected empty document, got %v", d)
	}
	if d := Tokenize(""); !d.Empty() {
		t.Fatalf("expected empty document, got %v", d)
	}
}

func TestFromSeeker(t *testing.T) {
	p := seeker.Profile{
		Skills:     []string{"react", "node"},
		Experience: "Built APIs",
		Education:  "CS degree",
	}
	got := FromSeeker(p)
	want := Document{"react", "node", "built", "apis", "cs", "degree"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFromSeeker_EmptyProfile(t *testing.T) {
	if d := FromSeeker(seeker.Profile{}); !d.Empty() {
		t.Fatalf("expected empty document, got %v", d)
	}
}

func TestFromJob(t *testing.T) {
	j := job.Posting{
		SkillsRequired: []string{"go", "postgresql"},
		Description:    "Backend role.",
	}
	got := FromJob(j)
	want := Document{"go", "postgresql", "backend", "role"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
