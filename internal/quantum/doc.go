// Package quantum provides the core data model for hydrogenic bound states.
//
// The package defines the immutable inputs shared by every evaluator:
//
//   - [State]: validated quantum numbers (n, l, m), nuclear charge and mass
//   - [ReducedMassContext]: reduced mass μ and the corrected Bohr radius a_μ
//   - [Constants]: physical constants table (CODATA 2018)
//   - [ParallelFor]: chunked fan-out used by the grid evaluators
//
// # Example
//
//	st, err := quantum.NewState(3, 2, 1, quantum.WithCharge(1))
//	if err != nil {
//	    return err // wraps ErrInvalidParameter
//	}
//	aMu := st.Context().AMu
//
// # Errors
//
// Invalid quantum numbers fail eagerly with [ErrInvalidParameter]. Kernels
// report out-of-domain inputs with [ErrDomain]. [ErrNumericDegradation] marks
// results computed in the measured-precision regime (n > [PrecisionRegimeN]).
package quantum
