package p3d

import (
	"fmt"

	p3dmath "github.com/Faultbox/pure3d/pkg/math"
)

// Physics.

type PhysicsObject struct {
	Name               string
	Version            uint32
	MaterialName       string
	NumJoints          uint32
	Volume             float32
	RestingSensitivity float32
}

type PhysicsJoint struct {
	Index     uint32
	Volume    float32
	Stiffness float32
	MaxAngle  float32
	MinAngle  float32
	DOF       uint32
}

type PhysicsVector struct {
	Vector p3dmath.Vec3
}

type PhysicsInertiaMatrix struct {
	X  p3dmath.Vec3
	YY float32
	YZ float32
	ZZ float32
}

// Collision.

type CollisionObject struct {
	Name         string
	Version      uint32
	MaterialName string
	NumSubObject uint32
	NumOwner     uint32
}

type CollisionVolume struct {
	ObjectReferenceIndex uint32
	OwnerIndex           int32
	NumVolume            uint32
}

type CollisionVolumeOwner struct {
	NumNames uint32
}

type CollisionVolumeOwnerName struct {
	Name string
}

type CollisionBoundingBox struct {
	Nothing uint32
}

type CollisionOblongBox struct {
	HalfExtentX float32
	HalfExtentY float32
	HalfExtentZ float32
}

type CollisionCylinder struct {
	Radius  float32
	Length  float32
	FlatEnd uint16
}

type CollisionSphere struct {
	Radius float32
}

type CollisionVector struct {
	Vector p3dmath.Vec3
}

type CollisionObjectAttribute struct {
	StaticAttribute uint16
	DefaultArea     uint32
	CanRoll         uint16
	CanSlide        uint16
	CanSpin         uint16
	CanBounce       uint16
	Extra1          uint32
	Extra2          uint32
	Extra3          uint32
}

// IntersectDSG is ground collision geometry.
type IntersectDSG struct {
	Indices   []uint32
	Positions []p3dmath.Vec3
	Normals   []p3dmath.Vec3
}

// TerrainTypeList holds one terrain type per IntersectDSG triangle.
type TerrainTypeList struct {
	Version uint32
	Types   []uint8
}

type StaticPhysicsDSG struct {
	Name    string
	Version uint32
}

type BreakableObject struct {
	Type  uint32
	Count uint32
}

// State props.

type StatePropData struct {
	Version     uint32
	Name        string
	FactoryName string
	NumStates   uint32
}

type StatePropState struct {
	Name                string
	AutoTransition      uint32
	OutState            uint32
	NumDrawable         uint32
	NumFrameControllers uint32
	NumEvents           uint32
	NumCallbacks        uint32
	OutFrames           float32
}

type StatePropVisibility struct {
	Name    string
	Visible uint32
}

type StatePropFrameController struct {
	Name          string
	Cyclic        uint32
	NumCycles     uint32
	HoldFrame     uint32
	MinFrame      float32
	MaxFrame      float32
	RelativeSpeed float32
}

type StatePropEvent struct {
	Name      string
	State     uint32
	EventEnum int32
}

type StatePropCallback struct {
	Name      string
	EventEnum int32
	OnFrame   float32
}

type PropInstanceList struct {
	Name string
}

type ObjectAttributes struct {
	ClassType uint32
	PhyPropID uint32
	Sound     string
}

// Scenegraph.

type Scenegraph struct {
	Name    string
	Version uint32
}

type ScenegraphBranch struct {
	Name        string
	NumChildren uint32
}

type ScenegraphTransform struct {
	Name        string
	NumChildren uint32
	Transform   p3dmath.Mat4
}

type ScenegraphVisibility struct {
	Name        string
	NumChildren uint32
	IsVisible   uint32
}

type ScenegraphAttachment struct {
	Name             string
	DrawablePoseName string
	NumPoints        uint32
}

type ScenegraphAttachmentPoint struct {
	Joint uint32
}

type ScenegraphDrawable struct {
	Name          string
	DrawableName  string
	IsTranslucent uint32
}

type ScenegraphCamera struct {
	Name       string
	CameraName string
}

type ScenegraphLightGroup struct {
	Name           string
	LightGroupName string
}

// Game attributes.

type GameAttr struct {
	Name      string
	Version   uint32
	NumParams uint32
}

// GameAttrParam is a named game attribute. Unlike shader parameters the
// key is a full string.
type GameAttrParam struct {
	Param string
	Value ParamValue
}

// Locators and world builder data.

type Locator struct {
	Name     string
	Version  uint32
	Position p3dmath.Vec3
}

// LocatorType is the role of a world builder locator.
type LocatorType uint32

const (
	LocatorEvent LocatorType = iota
	LocatorScript
	LocatorGeneric
	LocatorCarStart
	LocatorSpline
	LocatorDynamicZone
	LocatorOcclusion
	LocatorInteriorEntrance
	LocatorDirectional
	LocatorAction
	LocatorFOV
	LocatorBreakableCamera
	LocatorStaticCamera
	LocatorPedGroup
	LocatorCoin
	LocatorSpawnPoint
)

var locatorTypeNames = [...]string{
	"Event", "Script", "Generic", "CarStart", "Spline", "DynamicZone",
	"Occlusion", "InteriorEntrance", "Directional", "Action", "FOV",
	"BreakableCamera", "StaticCamera", "PedGroup", "Coin", "SpawnPoint",
}

// String returns the locator type name.
func (t LocatorType) String() string {
	if int(t) < len(locatorTypeNames) {
		return locatorTypeNames[t]
	}
	return fmt.Sprintf("LocatorType(%d)", uint32(t))
}

type WBLocator struct {
	Name        string
	Type        LocatorType
	Data        []uint32
	Position    p3dmath.Vec3
	NumTriggers uint32
}

type WBTriggerVolume struct {
	Name   string
	Type   uint32
	Scale  p3dmath.Vec3
	Matrix p3dmath.Mat4
}

type WBMatrix struct {
	Matrix p3dmath.Mat4
}

type WBSpline struct {
	Name string
	CVs  []p3dmath.Vec3 // Control vertices
}

type WBRail struct {
	Name         string
	Behavior     uint32
	MinRadius    float32
	MaxRadius    float32
	TrackRail    uint32
	TrackDist    float32
	ReverseSense uint32
	FOV          float32
	TargetOffset p3dmath.Vec3
	AxisPlay     p3dmath.Vec3
	PositionLag  float32
	TargetLag    float32
}

// Export metadata.

type ExportInfo struct {
	Name string
}

type ExportInfoString struct {
	Name  string
	Value string
}

type ExportInfoInt struct {
	Name  string
	Value uint32
}

// History lists the tool invocations that produced the file.
type History struct {
	Lines []string
}

type Camera struct {
	Name        string
	Version     uint32
	FOV         float32
	AspectRatio float32
	NearClip    float32
	FarClip     float32
	Position    p3dmath.Vec3
	Look        p3dmath.Vec3
	Up          p3dmath.Vec3
}

func nameVersion(c *Cursor) (string, uint32, error) {
	name, err := c.ReadString()
	if err != nil {
		return "", 0, err
	}
	v, err := c.ReadU32()
	if err != nil {
		return "", 0, err
	}
	return name, v, nil
}

func decodePhysicsObject(c *Cursor, _ Kind) (Payload, error) {
	var p PhysicsObject
	var err error
	if p.Name, p.Version, err = nameVersion(c); err != nil {
		return nil, err
	}
	if p.MaterialName, err = c.ReadString(); err != nil {
		return nil, err
	}
	if p.NumJoints, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if err := readF32s(c, &p.Volume, &p.RestingSensitivity); err != nil {
		return nil, err
	}
	return &p, nil
}

func decodePhysicsJoint(c *Cursor, _ Kind) (Payload, error) {
	var j PhysicsJoint
	var err error
	if j.Index, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if err := readF32s(c, &j.Volume, &j.Stiffness, &j.MaxAngle, &j.MinAngle); err != nil {
		return nil, err
	}
	if j.DOF, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &j, nil
}

func decodePhysicsVector(c *Cursor, _ Kind) (Payload, error) {
	v, err := c.ReadVec3()
	if err != nil {
		return nil, err
	}
	return &PhysicsVector{Vector: v}, nil
}

func decodePhysicsInertiaMatrix(c *Cursor, _ Kind) (Payload, error) {
	var m PhysicsInertiaMatrix
	var err error
	if m.X, err = c.ReadVec3(); err != nil {
		return nil, err
	}
	if err := readF32s(c, &m.YY, &m.YZ, &m.ZZ); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeCollisionObject(c *Cursor, _ Kind) (Payload, error) {
	var o CollisionObject
	var err error
	if o.Name, o.Version, err = nameVersion(c); err != nil {
		return nil, err
	}
	if o.MaterialName, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &o.NumSubObject, &o.NumOwner); err != nil {
		return nil, err
	}
	return &o, nil
}

func decodeCollisionVolume(c *Cursor, _ Kind) (Payload, error) {
	var v CollisionVolume
	var err error
	if v.ObjectReferenceIndex, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if v.OwnerIndex, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if v.NumVolume, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeCollisionVolumeOwner(c *Cursor, _ Kind) (Payload, error) {
	n, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	return &CollisionVolumeOwner{NumNames: n}, nil
}

func decodeCollisionVolumeOwnerName(c *Cursor, _ Kind) (Payload, error) {
	name, err := c.ReadString()
	if err != nil {
		return nil, err
	}
	return &CollisionVolumeOwnerName{Name: name}, nil
}

func decodeCollisionBoundingBox(c *Cursor, _ Kind) (Payload, error) {
	v, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	return &CollisionBoundingBox{Nothing: v}, nil
}

func decodeCollisionOblongBox(c *Cursor, _ Kind) (Payload, error) {
	var b CollisionOblongBox
	if err := readF32s(c, &b.HalfExtentX, &b.HalfExtentY, &b.HalfExtentZ); err != nil {
		return nil, err
	}
	return &b, nil
}

func decodeCollisionCylinder(c *Cursor, _ Kind) (Payload, error) {
	var cy CollisionCylinder
	var err error
	if err := readF32s(c, &cy.Radius, &cy.Length); err != nil {
		return nil, err
	}
	if cy.FlatEnd, err = c.ReadU16(); err != nil {
		return nil, err
	}
	return &cy, nil
}

func decodeCollisionSphere(c *Cursor, _ Kind) (Payload, error) {
	r, err := c.ReadF32()
	if err != nil {
		return nil, err
	}
	return &CollisionSphere{Radius: r}, nil
}

func decodeCollisionVector(c *Cursor, _ Kind) (Payload, error) {
	v, err := c.ReadVec3()
	if err != nil {
		return nil, err
	}
	return &CollisionVector{Vector: v}, nil
}

func decodeCollisionObjectAttribute(c *Cursor, _ Kind) (Payload, error) {
	var a CollisionObjectAttribute
	var err error
	if a.StaticAttribute, err = c.ReadU16(); err != nil {
		return nil, err
	}
	if a.DefaultArea, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if err := readU16s(c, &a.CanRoll, &a.CanSlide, &a.CanSpin, &a.CanBounce); err != nil {
		return nil, err
	}
	if err := readU32s(c, &a.Extra1, &a.Extra2, &a.Extra3); err != nil {
		return nil, err
	}
	return &a, nil
}

func decodeIntersectDSG(c *Cursor, _ Kind) (Payload, error) {
	var d IntersectDSG
	var err error
	if d.Indices, err = readList(c, 4, c.ReadU32); err != nil {
		return nil, err
	}
	if d.Positions, err = readList(c, 12, c.ReadVec3); err != nil {
		return nil, err
	}
	if d.Normals, err = readList(c, 12, c.ReadVec3); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeTerrainTypeList(c *Cursor, _ Kind) (Payload, error) {
	var t TerrainTypeList
	var err error
	if t.Version, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if t.Types, err = readList(c, 1, c.ReadU8); err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeStaticPhysicsDSG(c *Cursor, _ Kind) (Payload, error) {
	var d StaticPhysicsDSG
	var err error
	if d.Name, d.Version, err = nameVersion(c); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeBreakableObject(c *Cursor, _ Kind) (Payload, error) {
	var b BreakableObject
	if err := readU32s(c, &b.Type, &b.Count); err != nil {
		return nil, err
	}
	return &b, nil
}

func decodeStatePropData(c *Cursor, _ Kind) (Payload, error) {
	var d StatePropData
	var err error
	if d.Version, d.Name, err = versionName(c); err != nil {
		return nil, err
	}
	if d.FactoryName, err = c.ReadString(); err != nil {
		return nil, err
	}
	if d.NumStates, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeStatePropState(c *Cursor, _ Kind) (Payload, error) {
	var s StatePropState
	var err error
	if s.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &s.AutoTransition, &s.OutState, &s.NumDrawable,
		&s.NumFrameControllers, &s.NumEvents, &s.NumCallbacks); err != nil {
		return nil, err
	}
	if s.OutFrames, err = c.ReadF32(); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeStatePropVisibility(c *Cursor, _ Kind) (Payload, error) {
	var v StatePropVisibility
	var err error
	if v.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if v.Visible, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeStatePropFrameController(c *Cursor, _ Kind) (Payload, error) {
	var f StatePropFrameController
	var err error
	if f.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &f.Cyclic, &f.NumCycles, &f.HoldFrame); err != nil {
		return nil, err
	}
	if err := readF32s(c, &f.MinFrame, &f.MaxFrame, &f.RelativeSpeed); err != nil {
		return nil, err
	}
	return &f, nil
}

func decodeStatePropEvent(c *Cursor, _ Kind) (Payload, error) {
	var e StatePropEvent
	var err error
	if e.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if e.State, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if e.EventEnum, err = c.ReadI32(); err != nil {
		return nil, err
	}
	return &e, nil
}

func decodeStatePropCallback(c *Cursor, _ Kind) (Payload, error) {
	var cb StatePropCallback
	var err error
	if cb.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if cb.EventEnum, err = c.ReadI32(); err != nil {
		return nil, err
	}
	if cb.OnFrame, err = c.ReadF32(); err != nil {
		return nil, err
	}
	return &cb, nil
}

func decodePropInstanceList(c *Cursor, _ Kind) (Payload, error) {
	name, err := c.ReadString()
	if err != nil {
		return nil, err
	}
	return &PropInstanceList{Name: name}, nil
}

func decodeObjectAttributes(c *Cursor, _ Kind) (Payload, error) {
	var a ObjectAttributes
	var err error
	if err := readU32s(c, &a.ClassType, &a.PhyPropID); err != nil {
		return nil, err
	}
	if a.Sound, err = c.ReadString(); err != nil {
		return nil, err
	}
	return &a, nil
}

func decodeScenegraph(c *Cursor, _ Kind) (Payload, error) {
	var s Scenegraph
	var err error
	if s.Name, s.Version, err = nameVersion(c); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeScenegraphBranch(c *Cursor, _ Kind) (Payload, error) {
	var b ScenegraphBranch
	var err error
	if b.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if b.NumChildren, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &b, nil
}

func decodeScenegraphTransform(c *Cursor, _ Kind) (Payload, error) {
	var t ScenegraphTransform
	var err error
	if t.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if t.NumChildren, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if t.Transform, err = c.ReadMatrix(); err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeScenegraphVisibility(c *Cursor, _ Kind) (Payload, error) {
	var v ScenegraphVisibility
	var err error
	if v.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if err := readU32s(c, &v.NumChildren, &v.IsVisible); err != nil {
		return nil, err
	}
	return &v, nil
}

func decodeScenegraphAttachment(c *Cursor, _ Kind) (Payload, error) {
	var a ScenegraphAttachment
	var err error
	if err := readStrings(c, &a.Name, &a.DrawablePoseName); err != nil {
		return nil, err
	}
	if a.NumPoints, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &a, nil
}

func decodeScenegraphAttachmentPoint(c *Cursor, _ Kind) (Payload, error) {
	j, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	return &ScenegraphAttachmentPoint{Joint: j}, nil
}

func decodeScenegraphDrawable(c *Cursor, _ Kind) (Payload, error) {
	var d ScenegraphDrawable
	var err error
	if err := readStrings(c, &d.Name, &d.DrawableName); err != nil {
		return nil, err
	}
	if d.IsTranslucent, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &d, nil
}

func decodeScenegraphCamera(c *Cursor, _ Kind) (Payload, error) {
	var cam ScenegraphCamera
	if err := readStrings(c, &cam.Name, &cam.CameraName); err != nil {
		return nil, err
	}
	return &cam, nil
}

func decodeScenegraphLightGroup(c *Cursor, _ Kind) (Payload, error) {
	var l ScenegraphLightGroup
	if err := readStrings(c, &l.Name, &l.LightGroupName); err != nil {
		return nil, err
	}
	return &l, nil
}

func decodeGameAttr(c *Cursor, _ Kind) (Payload, error) {
	var g GameAttr
	var err error
	if g.Name, g.Version, err = nameVersion(c); err != nil {
		return nil, err
	}
	if g.NumParams, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &g, nil
}

func decodeGameAttrParam(c *Cursor, kind Kind) (Payload, error) {
	param, err := c.ReadString()
	if err != nil {
		return nil, err
	}

	var pk ParamKind
	switch kind {
	case KindGameAttrIntParam:
		pk = ParamInt
	case KindGameAttrFloatParam:
		pk = ParamFloat
	case KindGameAttrColourParam:
		pk = ParamColour
	case KindGameAttrVectorParam:
		pk = ParamVector
	case KindGameAttrMatrixParam:
		pk = ParamMatrix
	default:
		return nil, fmt.Errorf("not a game attribute parameter kind: %s", kind)
	}

	value, err := readParamValue(c, pk)
	if err != nil {
		return nil, err
	}
	return &GameAttrParam{Param: param, Value: value}, nil
}

func decodeLocator(c *Cursor, _ Kind) (Payload, error) {
	var l Locator
	var err error
	if l.Name, l.Version, err = nameVersion(c); err != nil {
		return nil, err
	}
	if l.Position, err = c.ReadVec3(); err != nil {
		return nil, err
	}
	return &l, nil
}

func decodeWBLocator(c *Cursor, _ Kind) (Payload, error) {
	var l WBLocator
	var err error
	if l.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	var typ uint32
	if typ, err = c.ReadU32(); err != nil {
		return nil, err
	}
	l.Type = LocatorType(typ)
	if l.Data, err = readList(c, 4, c.ReadU32); err != nil {
		return nil, err
	}
	if l.Position, err = c.ReadVec3(); err != nil {
		return nil, err
	}
	if l.NumTriggers, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &l, nil
}

func decodeWBTriggerVolume(c *Cursor, _ Kind) (Payload, error) {
	var t WBTriggerVolume
	var err error
	if t.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if t.Type, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if t.Scale, err = c.ReadVec3(); err != nil {
		return nil, err
	}
	if t.Matrix, err = c.ReadMatrix(); err != nil {
		return nil, err
	}
	return &t, nil
}

func decodeWBMatrix(c *Cursor, _ Kind) (Payload, error) {
	m, err := c.ReadMatrix()
	if err != nil {
		return nil, err
	}
	return &WBMatrix{Matrix: m}, nil
}

func decodeWBSpline(c *Cursor, _ Kind) (Payload, error) {
	var s WBSpline
	var err error
	if s.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if s.CVs, err = readList(c, 12, c.ReadVec3); err != nil {
		return nil, err
	}
	return &s, nil
}

func decodeWBRail(c *Cursor, _ Kind) (Payload, error) {
	var r WBRail
	var err error
	if r.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if r.Behavior, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if err := readF32s(c, &r.MinRadius, &r.MaxRadius); err != nil {
		return nil, err
	}
	if r.TrackRail, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if r.TrackDist, err = c.ReadF32(); err != nil {
		return nil, err
	}
	if r.ReverseSense, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if r.FOV, err = c.ReadF32(); err != nil {
		return nil, err
	}
	if err := readVec3s(c, &r.TargetOffset, &r.AxisPlay); err != nil {
		return nil, err
	}
	if err := readF32s(c, &r.PositionLag, &r.TargetLag); err != nil {
		return nil, err
	}
	return &r, nil
}

func decodeExportInfo(c *Cursor, _ Kind) (Payload, error) {
	name, err := c.ReadString()
	if err != nil {
		return nil, err
	}
	return &ExportInfo{Name: name}, nil
}

func decodeExportInfoString(c *Cursor, _ Kind) (Payload, error) {
	var e ExportInfoString
	if err := readStrings(c, &e.Name, &e.Value); err != nil {
		return nil, err
	}
	return &e, nil
}

func decodeExportInfoInt(c *Cursor, _ Kind) (Payload, error) {
	var e ExportInfoInt
	var err error
	if e.Name, err = c.ReadString(); err != nil {
		return nil, err
	}
	if e.Value, err = c.ReadU32(); err != nil {
		return nil, err
	}
	return &e, nil
}

func decodeHistory(c *Cursor, _ Kind) (Payload, error) {
	n, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	// Every line costs at least its length byte.
	if err := c.need(uint32(n), 1); err != nil {
		return nil, err
	}
	lines := make([]string, n)
	for i := range lines {
		if lines[i], err = c.ReadString(); err != nil {
			return nil, err
		}
	}
	return &History{Lines: lines}, nil
}

func decodeCamera(c *Cursor, _ Kind) (Payload, error) {
	var cam Camera
	var err error
	if cam.Name, cam.Version, err = nameVersion(c); err != nil {
		return nil, err
	}
	if err := readF32s(c, &cam.FOV, &cam.AspectRatio, &cam.NearClip, &cam.FarClip); err != nil {
		return nil, err
	}
	if err := readVec3s(c, &cam.Position, &cam.Look, &cam.Up); err != nil {
		return nil, err
	}
	return &cam, nil
}
