package p3d

import (
	p3dmath "github.com/Faultbox/pure3d/pkg/math"
)

// Skeleton is a joint hierarchy. Its SkeletonJoint children are ordered so
// that every parent precedes its children.
type Skeleton struct {
	Name      string
	Version   uint32
	NumJoints uint32
}

// SkeletonJoint is one joint. Parent indexes the skeleton's joint list and
// RestPose is relative to the parent.
type SkeletonJoint struct {
	Name          string
	Parent        uint32
	DOF           int32
	FreeAxis      int32
	PrimaryAxis   int32
	SecondaryAxis int32
	TwistAxis     int32
	RestPose      p3dmath.Mat4
}

type JointMirrorMap struct {
	MappedJointIndex uint32
	XAxisMap         float32
	YAxisMap         float32
	ZAxisMap         float32
}

type JointBonePreserve struct {
	PreserveBoneLengths uint32
}

func decodeSkeleton(c *Cursor, _ Kind) (Payload, error) {
	var s Skeleton
	var err error
	if s.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &s.Version, &s.NumJoints); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeSkeletonJoint(c *Cursor, _ Kind) (Payload, error) {
	var j SkeletonJoint
	var err error
	if j.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if j.Parent, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if err := readI32s(c, &j.DOF, &j.FreeAxis, &j.PrimaryAxis, &j.SecondaryAxis, &j.TwistAxis); err != nil {
		return nil, err
	}
	if j.RestPose, err = c.ReadMatrix(); err != nil {
		return nil, err
	}
	return &j, nil
}

func decodeJointMirrorMap(c *Cursor, _ Kind) (Payload, error) {
	var m JointMirrorMap
	var err error
	if m.MappedJointIndex, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if err := readF32s(c, &m.XAxisMap, &m.YAxisMap, &m.ZAxisMap); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeJointBonePreserve(c *Cursor, _ Kind) (Payload, error) {
	v, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	return &JointBonePreserve{PreserveBoneLengths: v}, nil
}
