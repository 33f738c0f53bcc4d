package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"book3d-renderer/internal/mathutil"
	"book3d-renderer/internal/params"
)

func testSpec() Spec {
	return Spec{
		CoverWidth:       187,
		CoverHeight:      263,
		SpineWidth:       12,
		BookType:         params.Paperback,
		WidthStretch:     1.0,
		PerspectiveAngle: 35,
		SpineSpreadAngle: 0,
	}
}

func TestBuildSharesHingeCorners(t *testing.T) {
	b := Build(testSpec())

	// Cover left edge and spine right edge are the same values, not just close.
	if b.Cover[0] != b.Spine[1] {
		t.Errorf("hinge top: cover %v != spine %v", b.Cover[0], b.Spine[1])
	}
	if b.Cover[3] != b.Spine[2] {
		t.Errorf("hinge bottom: cover %v != spine %v", b.Cover[3], b.Spine[2])
	}
	if b.Cover[0] != (mathutil.Vec3{0, 263, 0}) {
		t.Errorf("hinge top = %v, want (0, 263, 0)", b.Cover[0])
	}
}

func TestBuildCoverPose(t *testing.T) {
	s := testSpec()
	s.PerspectiveAngle = 0
	b := Build(s)

	// Head-on: the cover lies flat in the x/y plane.
	want := Panel3D{
		{0, 263, 0},
		{187, 263, 0},
		{187, 0, 0},
		{0, 0, 0},
	}
	if diff := cmp.Diff(want, b.Cover, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("cover mismatch (-want +got):\n%s", diff)
	}

	// The spine recedes straight back along +z.
	if diff := cmp.Diff(mathutil.Vec3{0, 263, 12}, b.Spine[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("spine far top corner (-want +got):\n%s", diff)
	}
}

func TestBuildSpineUsesSpreadAngle(t *testing.T) {
	s := testSpec()
	s.PerspectiveAngle = 30
	s.SpineSpreadAngle = 60
	b := Build(s)

	// Cover at 30° keeps depth; spine at 30+60=90° lies fully in the x/y plane.
	if diff := cmp.Diff(mathutil.Vec3{-12, 263, 0}, b.Spine[0], cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("spread spine corner (-want +got):\n%s", diff)
	}
}

func TestEffectiveSpineWidth(t *testing.T) {
	s := testSpec()
	if got := s.EffectiveSpineWidth(); got != 12 {
		t.Errorf("paperback width = %v, want 12", got)
	}

	s.WidthStretch = 1.5
	if got := s.EffectiveSpineWidth(); got != 18 {
		t.Errorf("stretched width = %v, want 18", got)
	}

	s.BookType = params.Hardcover
	if got, want := s.EffectiveSpineWidth(), 18*hardcoverBoardFactor; got != want {
		t.Errorf("hardcover width = %v, want %v", got, want)
	}
}

func TestHardcoverWiderThanPaperback(t *testing.T) {
	s := testSpec()
	paper := Build(s)
	s.BookType = params.Hardcover
	hard := Build(s)

	paperW := paper.Spine[0].Sub(paper.Spine[1]).Len()
	hardW := hard.Spine[0].Sub(hard.Spine[1]).Len()
	if hardW <= paperW {
		t.Errorf("hardcover spine %v not wider than paperback %v", hardW, paperW)
	}
}

func TestPanelNormalFacesCamera(t *testing.T) {
	b := Build(testSpec())
	// The camera is on the negative z side; a visible panel's normal must
	// have a negative z component.
	if n := b.Cover.Normal(); n[2] >= 0 {
		t.Errorf("cover normal %v does not face the camera", n)
	}
	if n := b.Spine.Normal(); n[2] >= 0 {
		t.Errorf("spine normal %v does not face the camera", n)
	}
}

func TestQuadSignedAreaAndBBox(t *testing.T) {
	q := Quad{{0, 0}, {4, 0}, {4, 3}, {0, 3}}
	if got := q.SignedArea(); got != 12 {
		t.Errorf("SignedArea = %v, want 12", got)
	}
	if got := q.Width(); got != 4 {
		t.Errorf("Width = %v, want 4", got)
	}
	if got := q.Height(); got != 3 {
		t.Errorf("Height = %v, want 3", got)
	}
}
