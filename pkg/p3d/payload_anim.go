package p3d

import (
	"fmt"

	p3dmath "github.com/Faultbox/pure3d/pkg/math"
)

type Animation struct {
	Version       uint32
	Name          string
	AnimationType string // Four character code, e.g. PTRN
	NumFrames     float32
	FrameRate     float32
	Cyclic        uint32
}

// AnimationSize records the memory footprint per target platform.
type AnimationSize struct {
	Version uint32
	PC      uint32
	PS2     uint32
	XBOX    uint32
	GC      uint32
}

type AnimationGroup struct {
	Version     uint32
	Name        string
	GroupID     uint32
	NumChannels uint32
}

type AnimationGroupList struct {
	Version   uint32
	NumGroups uint32
}

// Channel is one keyframed animation channel. Frames holds the key times;
// exactly one value slice, chosen by the chunk kind, has the same length.
type Channel struct {
	Version uint32
	Param   string
	Frames  []uint16

	// Vector1DOF and Vector2DOF channels only.
	Mapping   uint16
	Constants p3dmath.Vec3

	// Bool channels only.
	StartState uint16

	Floats  []float32
	Vec2s   []p3dmath.Vec2
	Vec3s   []p3dmath.Vec3
	Ints    []uint32
	Quats   []p3dmath.Quat
	Colours []Colour
	Bools   []uint16
}

type ChannelInterpolation struct {
	Version     uint32
	Interpolate uint32
}

type MultiController struct {
	Name      string
	Version   uint32
	Length    float32
	FrameRate float32
	NumTracks uint32
}

type MultiControllerTrack struct {
	Name      string
	StartTime float32
	EndTime   float32
	Scale     float32
}

type MultiControllerTracks struct {
	Tracks []MultiControllerTrack
}

type OldFrameController struct {
	Version       uint32
	Name          string
	Type2         string
	FrameOffset   float32
	HierarchyName string
	AnimationName string
}

type AnimatedObjectFactory struct {
	Version       uint32
	Name          string
	FactoryName   string
	NumAnimations uint32
}

type AnimatedObject struct {
	Version           uint32
	Name              string
	FactoryName       string
	StartingAnimation uint32
}

type AnimatedObjectAnimation struct {
	Version                uint32
	Name                   string
	FrameRate              float32
	NumOldFrameControllers uint32
}

// ObjectDSG is the shared header of the world entity and physics object
// kinds.
type ObjectDSG struct {
	Name        string
	Version     uint32
	RenderOrder uint32
}

type AnimatedObjectDSGWrapper struct {
	Name     string
	Version  uint8
	HasAlpha uint8
}

// versionName reads the Version-then-Name prefix shared by animation
// records.
func versionName(c *Cursor) (uint32, string, error) {
	v, err := c.ReadU32()
	if err != nil {
		return 0, "", err
	}
	name, err := c.ReadString()
	if err != nil {
		return 0, "", err
	}
	return v, name, nil
}

func decodeAnimation(c *Cursor, _ Kind) (Payload, error) {
	var a Animation
	var err error
	if a.Version, a.Name, err = versionName(c); err != nil {
		return nil, err
	}
	if a.AnimationType, err = c.ReadFourCC(); err != nil {
		return nil, err
	}
	if err := readF32s(c, &a.NumFrames, &a.FrameRate); err != nil {
		return nil, err
	}
	if a.Cyclic, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &a, nil
}

func decodeAnimationSize(c *Cursor, _ Kind) (Payload, error) {
	var s AnimationSize
	if err := readU32s(c, &s.Version, &s.PC, &s.PS2, &s.XBOX, &s.GC); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeAnimationGroup(c *Cursor, _ Kind) (Payload, error) {
	var g AnimationGroup
	var err error
	if g.Version, g.Name, err = versionName(c); err != nil {
		return nil, err
	}
	if err := readU32s(c, &g.GroupID, &g.NumChannels); err != nil {
		return nil, err
	}
	return &g, nil
}

func decodeAnimationGroupList(c *Cursor, _ Kind) (Payload, error) {
	var l AnimationGroupList
	if err := readU32s(c, &l.Version, &l.NumGroups); err != nil {
		return nil, err
	}
	return &l, nil
}

func decodeChannel(c *Cursor, kind Kind) (Payload, error) {
	var ch Channel
	var err error
	if ch.Version, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if ch.Param, err = c.ReadFourCC(); err != nil {
		return nil, err
	}

	switch kind {
	case KindVector1DOFChannel, KindVector2DOFChannel:
		if ch.Mapping, err = c.ReadU16(); err != nil {
			return nil, err
		}
		if ch.Constants, err = c.ReadVec3(); err != nil {
			return nil, err
		}
	case KindBoolChannel:
		if ch.StartState, err = c.ReadU16(); err != nil {
			return nil, err
		}
		ch.Bools, err = readList(c, 2, c.ReadU16)
		if err != nil {
			return nil, err
		}
		return &ch, nil
	}

	n, err := c.count(2)
	if err != nil {
		return nil, err
	}
	ch.Frames = make([]uint16, n)
	for i := range ch.Frames {
		if ch.Frames[i], err = c.ReadU16(); err != nil {
			return nil, err
		}
	}

	switch kind {
	case KindFloat1Channel, KindVector1DOFChannel:
		ch.Floats, err = readN(c, n, 4, c.ReadF32)
	case KindFloat2Channel, KindVector2DOFChannel:
		ch.Vec2s, err = readN(c, n, 8, c.ReadVec2)
	case KindIntChannel:
		ch.Ints, err = readN(c, n, 4, c.ReadU32)
	case KindVector3DOFChannel:
		ch.Vec3s, err = readN(c, n, 12, c.ReadVec3)
	case KindQuaternionChannel:
		ch.Quats, err = readN(c, n, 16, c.ReadQuaternion)
	case KindCompressedQuaternionChannel:
		ch.Quats, err = readN(c, n, 8, c.ReadCompressedQuaternion)
	case KindColourChannel:
		ch.Colours, err = readN(c, n, 4, c.ReadColour)
	default:
		return nil, fmt.Errorf("not a channel kind: %s", kind)
	}
	if err != nil {
		return nil, err
	}
	return &ch, nil
}

func decodeChannelInterpolation(c *Cursor, _ Kind) (Payload, error) {
	var ci ChannelInterpolation
	if err := readU32s(c, &ci.Version, &ci.Interpolate); err != nil {
		return nil, err
	}
	return &ci, nil
}

func decodeMultiController(c *Cursor, _ Kind) (Payload, error) {
	var m MultiController
	var err error
	if m.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if m.Version, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if err := readF32s(c, &m.Length, &m.FrameRate); err != nil {
		return nil, err
	}
	if m.NumTracks, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeMultiControllerTracks(c *Cursor, _ Kind) (Payload, error) {
	// Each track is at least a length byte and three floats.
	n, err := c.count(13)
	if err != nil {
		return nil, err
	}
	tracks := make([]MultiControllerTrack, n)
	for i := range tracks {
		t := &tracks[i]
		if t.Name, err = c.ReadString(); err != nil {
			return nil, err
		}
		if err := readF32s(c, &t.StartTime, &t.EndTime, &t.Scale); err != nil {
			return nil, err
		}
	}
	return &MultiControllerTracks{Tracks: tracks}, nil
}

func decodeOldFrameController(c *Cursor, _ Kind) (Payload, error) {
	var f OldFrameController
	var err error
	if f.Version, f.Name, err = versionName(c); err != nil {
		return nil, err
	}
	if f.Type2, err = c.ReadFourCC(); err != nil {
		return nil, err
	}
	if f.FrameOffset, err = c.ReadF32(); err != nil {
		return nil, err
	}
	if err := readStrings(c, &f.HierarchyName, &f.AnimationName); err != nil {
		return nil, err
	}
	return &f, nil
}

func decodeAnimatedObjectFactory(c *Cursor, _ Kind) (Payload, error) {
	var f AnimatedObjectFactory
	var err error
	if f.Version, f.Name, err = versionName(c); err != nil {
		return nil, err
	}
	if f.FactoryName, err = c.ReadString(); err != nil {
		return nil, err
	}
	if f.NumAnimations, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &f, nil
}

func decodeAnimatedObject(c *Cursor, _ Kind) (Payload, error) {
	var o AnimatedObject
	var err error
	if o.Version, o.Name, err = versionName(c); err != nil {
		return nil, err
	}
	if o.FactoryName, err = c.ReadString(); err != nil {
		return nil, err
	}
	if o.StartingAnimation, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &o, nil
}

func decodeAnimatedObjectAnimation(c *Cursor, _ Kind) (Payload, error) {
	var a AnimatedObjectAnimation
	var err error
	if a.Version, a.Name, err = versionName(c); err != nil {
		return nil, err
	}
	if a.FrameRate, err = c.ReadF32(); err != nil {
		return nil, err
	}
	if a.NumOldFrameControllers, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &a, nil
}

func decodeObjectDSG(c *Cursor, _ Kind) (Payload, error) {
	var o ObjectDSG
	var err error
	if o.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &o.Version, &o.RenderOrder); err != nil {
		return nil, err
	}
	return &o, nil
}

func decodeAnimatedObjectDSGWrapper(c *Cursor, _ Kind) (Payload, error) {
	var w AnimatedObjectDSGWrapper
	var err error
	if w.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if w.Version, err = c.ReadU8(); err != nil {
		return nil, err
	}
	if w.HasAlpha, err = c.ReadU8(); err != nil {
		return nil, err
	}
	return &w, nil
}
