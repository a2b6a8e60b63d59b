package p3d

import (
	p3dmath "github.com/Faultbox/pure3d/pkg/math"
)

type decoderFunc func(c *Cursor, kind Kind) (Payload, error)

var decoders = map[Kind]decoderFunc{
	KindDataFile:           decodeNone,
	KindDataFileCompressed: decodeNone,

	KindTexture:            decodeTexture,
	KindImage:              decodeImage,
	KindImageData:          decodeImageData,
	KindShader:             decodeShader,
	KindShaderTextureParam: decodeShaderParam,
	KindShaderIntParam:     decodeShaderParam,
	KindShaderFloatParam:   decodeShaderParam,
	KindShaderColourParam:  decodeShaderParam,
	KindShaderVectorParam:  decodeShaderParam,
	KindShaderMatrixParam:  decodeShaderParam,
	KindVertexShader:       decodeVertexShader,

	KindMesh:             decodeMesh,
	KindSkin:             decodeSkin,
	KindOldPrimGroup:     decodePrimGroup,
	KindPositionList:     decodePositionList,
	KindNormalList:       decodeNormalList,
	KindTangentList:      decodeTangentList,
	KindBiNormalList:     decodeBinormalList,
	KindPackedNormalList: decodePackedNormalList,
	KindUVList:           decodeUVList,
	KindColourList:       decodeColourList,
	KindIndexList:        decodeIndexList,
	KindMatrixList:       decodeMatrixList,
	KindMatrixPalette:    decodeMatrixPalette,
	KindWeightList:       decodeWeightList,
	KindBBox:             decodeBoundingBox,
	KindBSphere:          decodeBoundingSphere,
	KindRenderStatus:     decodeRenderStatus,

	KindP3DCompositeDrawable:           decodeCompositeDrawable,
	KindP3DCompositeDrawableSkinList:   decodeCompositeDrawableList,
	KindP3DCompositeDrawablePropList:   decodeCompositeDrawableList,
	KindP3DCompositeDrawableEffectList: decodeCompositeDrawableList,
	KindP3DCompositeDrawableSkin:       decodeCompositeDrawableSkin,
	KindP3DCompositeDrawableProp:       decodeCompositeDrawableProp,
	KindP3DCompositeDrawableEffect:     decodeCompositeDrawableProp,
	KindP3DCompositeDrawableSortOrder:  decodeSortOrder,

	KindP3DSkeleton:                  decodeSkeleton,
	KindP3DSkeletonJoint:             decodeSkeletonJoint,
	KindP3DSkeletonJointMirrorMap:    decodeJointMirrorMap,
	KindP3DSkeletonJointBonePreserve: decodeJointBonePreserve,

	KindAnimation:                   decodeAnimation,
	KindAnimationSize:               decodeAnimationSize,
	KindAnimationGroup:              decodeAnimationGroup,
	KindAnimationGroupList:          decodeAnimationGroupList,
	KindFloat1Channel:               decodeChannel,
	KindFloat2Channel:               decodeChannel,
	KindIntChannel:                  decodeChannel,
	KindVector1DOFChannel:           decodeChannel,
	KindVector2DOFChannel:           decodeChannel,
	KindVector3DOFChannel:           decodeChannel,
	KindQuaternionChannel:           decodeChannel,
	KindCompressedQuaternionChannel: decodeChannel,
	KindColourChannel:               decodeChannel,
	KindBoolChannel:                 decodeChannel,
	KindChannelInterpolationMode:    decodeChannelInterpolation,
	KindP3DMultiController:          decodeMultiController,
	KindP3DMultiControllerTracks:    decodeMultiControllerTracks,
	KindOldFrameController:          decodeOldFrameController,
	KindAnimatedObjectFactory:       decodeAnimatedObjectFactory,
	KindAnimatedObject:              decodeAnimatedObject,
	KindAnimatedObjectAnimation:     decodeAnimatedObjectAnimation,

	KindEntityDSG:                             decodeObjectDSG,
	KindDynamicPhysicsDSG:                     decodeObjectDSG,
	KindInstanceableStaticPhysicsDSG:          decodeObjectDSG,
	KindInstanceableAnimatedDynamicPhysicsDSG: decodeObjectDSG,
	KindAnimatedObjectDSGWrapper:              decodeAnimatedObjectDSGWrapper,
	KindStaticPhysicsDSG:                      decodeStaticPhysicsDSG,
	KindBreakableObject:                       decodeBreakableObject,

	KindPhysicsObject:        decodePhysicsObject,
	KindPhysicsJoint:         decodePhysicsJoint,
	KindPhysicsVector:        decodePhysicsVector,
	KindPhysicsInertiaMatrix: decodePhysicsInertiaMatrix,

	KindCollisionObject:          decodeCollisionObject,
	KindCollisionVolume:          decodeCollisionVolume,
	KindCollisionVolumeOwner:     decodeCollisionVolumeOwner,
	KindCollisionVolumeOwnerName: decodeCollisionVolumeOwnerName,
	KindCollisionBoundingBox:     decodeCollisionBoundingBox,
	KindCollisionOblongBox:       decodeCollisionOblongBox,
	KindCollisionCylinder:        decodeCollisionCylinder,
	KindCollisionSphere:          decodeCollisionSphere,
	KindCollisionVector:          decodeCollisionVector,
	KindCollisionObjectAttribute: decodeCollisionObjectAttribute,
	KindIntersectDSG:             decodeIntersectDSG,
	KindTerrainTypeList:          decodeTerrainTypeList,

	KindStatePropDataV1:              decodeStatePropData,
	KindStatePropStateDataV1:         decodeStatePropState,
	KindStatePropVisibilitiesData:    decodeStatePropVisibility,
	KindStatePropFrameControllerData: decodeStatePropFrameController,
	KindStatePropEventData:           decodeStatePropEvent,
	KindStatePropCallbackData:        decodeStatePropCallback,
	KindObjectAttributes:             decodeObjectAttributes,
	KindPropInstanceList:             decodePropInstanceList,

	KindScenegraph:                   decodeScenegraph,
	KindOldScenegraphRoot:            decodeNone,
	KindOldScenegraphBranch:          decodeScenegraphBranch,
	KindOldScenegraphTransform:       decodeScenegraphTransform,
	KindOldScenegraphVisibility:      decodeScenegraphVisibility,
	KindOldScenegraphAttachment:      decodeScenegraphAttachment,
	KindOldScenegraphAttachmentPoint: decodeScenegraphAttachmentPoint,
	KindOldScenegraphDrawable:        decodeScenegraphDrawable,
	KindOldScenegraphCamera:          decodeScenegraphCamera,
	KindOldScenegraphLightGroup:      decodeScenegraphLightGroup,
	KindOldScenegraphSortOrder:       decodeSortOrder,

	KindGameAttr:            decodeGameAttr,
	KindGameAttrIntParam:    decodeGameAttrParam,
	KindGameAttrFloatParam:  decodeGameAttrParam,
	KindGameAttrColourParam: decodeGameAttrParam,
	KindGameAttrVectorParam: decodeGameAttrParam,
	KindGameAttrMatrixParam: decodeGameAttrParam,

	KindLocator:         decodeLocator,
	KindWBLocator:       decodeWBLocator,
	KindWBTriggerVolume: decodeWBTriggerVolume,
	KindWBMatrix:        decodeWBMatrix,
	KindWBSpline:        decodeWBSpline,
	KindWBRail:          decodeWBRail,

	KindP3DExportInfo:            decodeExportInfo,
	KindP3DExportInfoNamedString: decodeExportInfoString,
	KindP3DExportInfoNamedInt:    decodeExportInfoInt,
	KindP3DHistory:               decodeHistory,
	KindP3DCamera:                decodeCamera,
}

// HasDecoder reports whether payloads of kind are decoded into a typed
// record rather than kept as Unknown.
func HasDecoder(kind Kind) bool {
	_, ok := decoders[kind]
	return ok
}

// DecodePayload decodes the payload bytes of one chunk. It returns the
// record and the number of bytes the decoder consumed. Kinds without a
// decoder yield an *Unknown holding data, with consumed equal to len(data).
func DecodePayload(kind Kind, data []byte) (Payload, int, error) {
	dec, ok := decoders[kind]
	if !ok {
		return &Unknown{Kind: kind, Data: data}, len(data), nil
	}
	c := NewCursor(data)
	p, err := dec(c, kind)
	if err != nil {
		return nil, c.Pos(), err
	}
	return p, c.Pos(), nil
}

func decodeNone(*Cursor, Kind) (Payload, error) {
	return &None{}, nil
}

func readU16s(c *Cursor, dst ...*uint16) error {
	for _, p := range dst {
		v, err := c.ReadU16()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func readU32s(c *Cursor, dst ...*uint32) error {
	for _, p := range dst {
		v, err := c.ReadU32()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func readI32s(c *Cursor, dst ...*int32) error {
	for _, p := range dst {
		v, err := c.ReadI32()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func readF32s(c *Cursor, dst ...*float32) error {
	for _, p := range dst {
		v, err := c.ReadF32()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func readVec3s(c *Cursor, dst ...*p3dmath.Vec3) error {
	for _, p := range dst {
		v, err := c.ReadVec3()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

func readStrings(c *Cursor, dst ...*string) error {
	for _, p := range dst {
		v, err := c.ReadString()
		if err != nil {
			return err
		}
		*p = v
	}
	return nil
}

// readList reads a u32 count followed by that many elements of at least
// size bytes each.
func readList[T any](c *Cursor, size int, read func() (T, error)) ([]T, error) {
	n, err := c.count(size)
	if err != nil {
		return nil, err
	}
	return readN(c, n, size, read)
}

// readN reads n elements whose count was stored elsewhere.
func readN[T any](c *Cursor, n, size int, read func() (T, error)) ([]T, error) {
	if err := c.need(uint32(n), size); err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		v, err := read()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
