// Package exchanger provides heat exchanger sizing and rating methods: the
// effectiveness-NTU method for the basic flow configurations including the
// exact crossflow integral, the P-NTU temperature effectiveness method for
// TEMA E, G, H and J shells, plate exchangers and air coolers, the inverse
// NTU-from-P solutions, the Fakheri LMTD correction factor, TEMA tubing and
// shell geometry rules, and tube count correlations with bundle sizing. A
// Rater front-end validates rating requests and dispatches to the solution
// methods.
package exchanger
