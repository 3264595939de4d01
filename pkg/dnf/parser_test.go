package dnf

import (
	"reflect"
	"testing"

	"github.com/arc-language/mpkg/pkg/core"
)

func TestParseList(t *testing.T) {
	out := []byte(`Installed Packages
bash.x86_64                        5.2.15-3.fc38                @anaconda
python3.11.x86_64                  3.11.6-1.fc38                @updates
texlive-collection-latexrecommended.noarch
                                   9:svn54074-59.fc38           @fedora
garbage
`)

	got := ParseList(out).Collect()
	want := []core.Package{
		core.NewPackage("bash", "5.2.15-3.fc38"),
		core.NewPackage("python3.11", "3.11.6-1.fc38"),
		core.NewPackage("texlive-collection-latexrecommended", "9:svn54074-59.fc38"),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseList() = %v, want %v", got, want)
	}
}

func TestParseSearch(t *testing.T) {
	out := []byte(`======================== Name Exactly Matched: git ========================
git.x86_64 : Fast Version Control System
======================= Name & Summary Matched: git ========================
git-lfs.x86_64 : Git extension for versioning large files
not a result line
`)

	got := ParseSearch(out).Collect()
	want := []core.Package{
		core.NewPackage("git", ""),
		core.NewPackage("git-lfs", ""),
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseSearch() = %v, want %v", got, want)
	}
}

func TestParseList_Idempotent(t *testing.T) {
	out := []byte("long-name.noarch\n    1.0-1    @fedora\nbash.x86_64 5.2 @anaconda\n")
	a := ParseList(out).Collect()
	b := ParseList(out).Collect()
	if len(a) != 2 || !reflect.DeepEqual(a, b) {
		t.Errorf("parsing twice: %v vs %v", a, b)
	}
}

func TestRepoPrerequisites(t *testing.T) {
	got := Manager{}.RepoPrerequisites()
	if len(got) != 1 || got[0].Name() != ConfigManagerPlugin {
		t.Errorf("RepoPrerequisites() = %v", got)
	}
}
