// Package convection provides forced and free convection heat transfer
// correlations: internal pipe flow, external flow over cylinders and plates,
// free convection from immersed bodies and in enclosures, tube banks with
// their pressure drop and Bell-Delaware shell-side corrections, packed beds,
// agitated vessel jackets, plate exchangers, supercritical fluids and
// two-phase flow. Correlation families carry method-name dispatchers that
// select the preferred published formula.
package convection
