package scene

import (
	"fmt"

	p3dmath "github.com/Faultbox/pure3d/pkg/math"
	"github.com/Faultbox/pure3d/pkg/p3d"
)

// Joint is a skeleton joint with its composed transforms.
type Joint struct {
	Name          string
	Parent        int // Index into the skeleton's joints
	DOF           int32
	FreeAxis      int32
	PrimaryAxis   int32
	SecondaryAxis int32
	TwistAxis     int32
	RestPose      p3dmath.Mat4 // Relative to the parent
	World         p3dmath.Mat4
	InverseWorld  p3dmath.Mat4 // Bind matrix
}

// Skeleton is a joint hierarchy. Joint 0 is the root and every joint's
// parent precedes it.
type Skeleton struct {
	Name   string
	Index  int // Chunk index of the skeleton record
	Joints []Joint
}

// BuildSkeleton reconstructs the skeleton record at index and computes
// each joint's world and inverse world transforms in index order.
func BuildSkeleton(f *p3d.Forest, index int) (*Skeleton, error) {
	s, ok := f.Chunk(index).Payload.(*p3d.Skeleton)
	if !ok {
		return nil, fmt.Errorf("chunk %d is %v, not a skeleton", index, f.Chunk(index).Kind)
	}

	out := &Skeleton{Name: s.Name, Index: index}
	for _, c := range f.ChildrenOfKind(index, p3d.KindP3DSkeletonJoint) {
		j, ok := f.Chunk(c).Payload.(*p3d.SkeletonJoint)
		if !ok {
			return nil, fmt.Errorf("joint %d (chunk %d) has payload %T: %w",
				len(out.Joints), c, f.Chunk(c).Payload, ErrUndecodedJoint)
		}
		out.Joints = append(out.Joints, Joint{
			Name:          j.Name,
			Parent:        int(j.Parent),
			DOF:           j.DOF,
			FreeAxis:      j.FreeAxis,
			PrimaryAxis:   j.PrimaryAxis,
			SecondaryAxis: j.SecondaryAxis,
			TwistAxis:     j.TwistAxis,
			RestPose:      j.RestPose,
		})
	}

	if err := out.computeWorld(); err != nil {
		return nil, err
	}
	return out, nil
}

// computeWorld composes each joint's rest pose with its parent's world
// transform. File matrices act on row vectors, so world = rest * parent
// there, which is parent.Mul(rest) in column-major form.
func (s *Skeleton) computeWorld() error {
	for i := range s.Joints {
		j := &s.Joints[i]
		if i == 0 {
			j.World = j.RestPose
		} else {
			if j.Parent < 0 || j.Parent >= i {
				return fmt.Errorf("joint %d (%s) has parent %d: %w", i, j.Name, j.Parent, ErrJointOrder)
			}
			j.World = s.Joints[j.Parent].World.Mul(j.RestPose)
		}

		inv, ok := j.World.Invert()
		if !ok {
			return fmt.Errorf("joint %d (%s): %w", i, j.Name, ErrSingularTransform)
		}
		j.InverseWorld = inv
	}
	return nil
}

// JointByName returns the index of the first joint with the given name.
func (s *Skeleton) JointByName(name string) (int, bool) {
	for i := range s.Joints {
		if s.Joints[i].Name == name {
			return i, true
		}
	}
	return 0, false
}
