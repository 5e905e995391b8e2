// Package transform builds 4×4 homogeneous transforms on top of linalg.
//
// Model transforms: Translate, Scale, ScaleUniform, RotateX/Y/Z and Rotate
// (axis-angle). View: LookAt. Projection: Ortho, Frustum and Perspective.
//
// Matrices are row-major and act on column vectors (p' = M·p), so
// translation lives in the last column and M = P·V·W applies W first.
// Projections default to the OpenGL conventions and accept WithDepthRange
// and WithHandedness for Direct3D/Vulkan style pipelines.
package transform
