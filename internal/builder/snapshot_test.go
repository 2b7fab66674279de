package builder

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/go-javalint/internal/ast"
)

// TestBuilderGoldenSnapshots golden-snapshots the ast.Dump() text of a
// handful of built compilation units, the same way the teacher's
// fixture_test.go snapshots interpreter output: the fixture shape matters,
// not a hand-rolled field-by-field assertion for every node the builder
// could possibly emit.
func TestBuilderGoldenSnapshots(t *testing.T) {
	t.Run("PackageAndEmptyClass", func(t *testing.T) {
		root := sn(tagCompilationUnit, "",
			sn(tagPackageDeclaration, "", sn(tagQualifiedIdentifier, "", identifier("p"))),
			sn(tagTypeDeclaration, "",
				sn(tagClassDecl, "A", identifier("A"), sn(tagClassBody, ""))),
		)
		cu, err := Build(root)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		snaps.MatchSnapshot(t, "PackageAndEmptyClass", ast.Dump(cu))
	})

	t.Run("QualifiedSupertype", func(t *testing.T) {
		root := sn(tagCompilationUnit, "",
			sn(tagTypeDeclaration, "",
				sn(tagClassDecl, "A",
					identifier("A"),
					sn(tagExtends, "", sn(tagClassType, "", identifier("a"), identifier("b"), identifier("C"))),
					sn(tagClassBody, ""),
				)),
		)
		cu, err := Build(root)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}
		snaps.MatchSnapshot(t, "QualifiedSupertype", ast.Dump(cu))
	})
}
