/*
Package testutil provides fixtures for tests of the LFSR packages.

Fixtures follow the option pattern used across the repository, so a test only
states what differs from the defaults:

	// [5, 3] register starting from 11110
	r := testutil.NewTestRegister(t,
	    testutil.WithTaps(5, 3),
	    testutil.WithInitState("11110"),
	)

	// same register as a serializable config
	cfg := testutil.NewTestConfig(testutil.WithTaps(5, 3), testutil.WithGalois())

Deterministic randomness comes from SeededSource, and the reference full-period
sequences used in property tests are exposed as constants so that several
packages can assert against the same values.
*/
package testutil
