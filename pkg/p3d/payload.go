package p3d

import "fmt"

// Payload is the decoded body of a chunk. The set of implementations is
// closed; callers switch on the concrete type.
type Payload interface {
	isPayload()
}

// None is the payload of chunks that carry no fields of their own, such as
// the file root.
type None struct{}

// Unknown is the payload of chunks whose kind has no decoder, or whose
// decoder failed while payload errors are tolerated. Data aliases the
// chunk's payload bytes.
type Unknown struct {
	Kind Kind
	Data []byte
	Err  error // Decoder error, nil for kinds without a decoder
}

// Colour is a colour in A, R, G, B order.
type Colour [4]uint8

func (c Colour) A() uint8 { return c[0] }
func (c Colour) R() uint8 { return c[1] }
func (c Colour) G() uint8 { return c[2] }
func (c Colour) B() uint8 { return c[3] }

// String returns the colour as #AARRGGBB.
func (c Colour) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c[0], c[1], c[2], c[3])
}

// NameOf returns the record name carried by a payload, if it has one.
func NameOf(p Payload) (string, bool) {
	switch v := p.(type) {
	case *Texture:
		return v.Name, true
	case *Image:
		return v.Name, true
	case *Shader:
		return v.Name, true
	case *Mesh:
		return v.Name, true
	case *Skin:
		return v.Name, true
	case *Skeleton:
		return v.Name, true
	case *SkeletonJoint:
		return v.Name, true
	case *CompositeDrawable:
		return v.Name, true
	case *CompositeDrawableSkin:
		return v.Name, true
	case *CompositeDrawableProp:
		return v.Name, true
	case *Animation:
		return v.Name, true
	case *AnimationGroup:
		return v.Name, true
	case *MultiController:
		return v.Name, true
	case *OldFrameController:
		return v.Name, true
	case *AnimatedObjectFactory:
		return v.Name, true
	case *AnimatedObject:
		return v.Name, true
	case *AnimatedObjectAnimation:
		return v.Name, true
	case *ObjectDSG:
		return v.Name, true
	case *AnimatedObjectDSGWrapper:
		return v.Name, true
	case *PhysicsObject:
		return v.Name, true
	case *CollisionObject:
		return v.Name, true
	case *CollisionVolumeOwnerName:
		return v.Name, true
	case *StaticPhysicsDSG:
		return v.Name, true
	case *StatePropData:
		return v.Name, true
	case *StatePropState:
		return v.Name, true
	case *StatePropVisibility:
		return v.Name, true
	case *StatePropFrameController:
		return v.Name, true
	case *StatePropEvent:
		return v.Name, true
	case *StatePropCallback:
		return v.Name, true
	case *PropInstanceList:
		return v.Name, true
	case *Scenegraph:
		return v.Name, true
	case *ScenegraphBranch:
		return v.Name, true
	case *ScenegraphTransform:
		return v.Name, true
	case *ScenegraphVisibility:
		return v.Name, true
	case *ScenegraphAttachment:
		return v.Name, true
	case *ScenegraphDrawable:
		return v.Name, true
	case *ScenegraphCamera:
		return v.Name, true
	case *ScenegraphLightGroup:
		return v.Name, true
	case *GameAttr:
		return v.Name, true
	case *Locator:
		return v.Name, true
	case *WBLocator:
		return v.Name, true
	case *WBTriggerVolume:
		return v.Name, true
	case *WBSpline:
		return v.Name, true
	case *WBRail:
		return v.Name, true
	case *ExportInfo:
		return v.Name, true
	case *ExportInfoString:
		return v.Name, true
	case *ExportInfoInt:
		return v.Name, true
	case *Camera:
		return v.Name, true
	}
	return "", false
}

func (*None) isPayload()    {}
func (*Unknown) isPayload() {}

func (*Texture) isPayload()      {}
func (*Image) isPayload()        {}
func (*ImageData) isPayload()    {}
func (*Shader) isPayload()       {}
func (*ShaderParam) isPayload()  {}
func (*VertexShader) isPayload() {}

func (*Mesh) isPayload()                  {}
func (*Skin) isPayload()                  {}
func (*PrimGroup) isPayload()             {}
func (*PositionList) isPayload()          {}
func (*NormalList) isPayload()            {}
func (*TangentList) isPayload()           {}
func (*BinormalList) isPayload()          {}
func (*PackedNormalList) isPayload()      {}
func (*UVList) isPayload()                {}
func (*ColourList) isPayload()            {}
func (*IndexList) isPayload()             {}
func (*MatrixList) isPayload()            {}
func (*MatrixPalette) isPayload()         {}
func (*WeightList) isPayload()            {}
func (*RenderStatus) isPayload()          {}
func (*BoundingBox) isPayload()           {}
func (*BoundingSphere) isPayload()        {}
func (*CompositeDrawable) isPayload()     {}
func (*CompositeDrawableList) isPayload() {}
func (*CompositeDrawableSkin) isPayload() {}
func (*CompositeDrawableProp) isPayload() {}
func (*SortOrder) isPayload()             {}

func (*Skeleton) isPayload()          {}
func (*SkeletonJoint) isPayload()     {}
func (*JointMirrorMap) isPayload()    {}
func (*JointBonePreserve) isPayload() {}

func (*Animation) isPayload()                {}
func (*AnimationSize) isPayload()            {}
func (*AnimationGroup) isPayload()           {}
func (*AnimationGroupList) isPayload()       {}
func (*Channel) isPayload()                  {}
func (*ChannelInterpolation) isPayload()     {}
func (*MultiController) isPayload()          {}
func (*MultiControllerTracks) isPayload()    {}
func (*OldFrameController) isPayload()       {}
func (*AnimatedObjectFactory) isPayload()    {}
func (*AnimatedObject) isPayload()           {}
func (*AnimatedObjectAnimation) isPayload()  {}
func (*ObjectDSG) isPayload()                {}
func (*AnimatedObjectDSGWrapper) isPayload() {}

func (*PhysicsObject) isPayload()            {}
func (*PhysicsJoint) isPayload()             {}
func (*PhysicsVector) isPayload()            {}
func (*PhysicsInertiaMatrix) isPayload()     {}
func (*CollisionObject) isPayload()          {}
func (*CollisionVolume) isPayload()          {}
func (*CollisionVolumeOwner) isPayload()     {}
func (*CollisionVolumeOwnerName) isPayload() {}
func (*CollisionBoundingBox) isPayload()     {}
func (*CollisionOblongBox) isPayload()       {}
func (*CollisionCylinder) isPayload()        {}
func (*CollisionSphere) isPayload()          {}
func (*CollisionVector) isPayload()          {}
func (*CollisionObjectAttribute) isPayload() {}
func (*IntersectDSG) isPayload()             {}
func (*TerrainTypeList) isPayload()          {}
func (*StaticPhysicsDSG) isPayload()         {}
func (*BreakableObject) isPayload()          {}

func (*StatePropData) isPayload()            {}
func (*StatePropState) isPayload()           {}
func (*StatePropVisibility) isPayload()      {}
func (*StatePropFrameController) isPayload() {}
func (*StatePropEvent) isPayload()           {}
func (*StatePropCallback) isPayload()        {}
func (*PropInstanceList) isPayload()         {}
func (*ObjectAttributes) isPayload()         {}

func (*Scenegraph) isPayload()                {}
func (*ScenegraphBranch) isPayload()          {}
func (*ScenegraphTransform) isPayload()       {}
func (*ScenegraphVisibility) isPayload()      {}
func (*ScenegraphAttachment) isPayload()      {}
func (*ScenegraphAttachmentPoint) isPayload() {}
func (*ScenegraphDrawable) isPayload()        {}
func (*ScenegraphCamera) isPayload()          {}
func (*ScenegraphLightGroup) isPayload()      {}

func (*GameAttr) isPayload()          {}
func (*GameAttrParam) isPayload()     {}
func (*Locator) isPayload()           {}
func (*WBLocator) isPayload()         {}
func (*WBTriggerVolume) isPayload()   {}
func (*WBMatrix) isPayload()          {}
func (*WBSpline) isPayload()          {}
func (*WBRail) isPayload()            {}
func (*ExportInfo) isPayload()        {}
func (*ExportInfoString) isPayload()  {}
func (*ExportInfoInt) isPayload()     {}
func (*History) isPayload()           {}
func (*Camera) isPayload()            {}
