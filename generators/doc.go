/*
Package generators builds keystream generators out of several LFSRs.

  - A51 is the GSM A5/1 cipher core: three registers of lengths 19, 22 and 23
    clocked irregularly by majority vote.
  - Geffe selects, on every cycle, the output of one of K component registers
    using log2(K) bits drawn from a selector register.
  - Geffe3 combines exactly three registers with a fixed boolean function.

Each generator exclusively owns the registers it was built with: it steps them,
it never changes their polynomials, and callers should not keep using them.
Like the registers, generators are not safe for concurrent use.

Register contents can be supplied directly, or derived from a secret with
DeriveKey, which expands the secret with HKDF over SHA3-256 into exactly the
requested number of bits per register.

	gen, err := generators.NewA51FromSecret([]byte("passphrase"))
	if err != nil {
	    return err
	}
	stream := generators.NewStream(gen)
	stream.XORKeyStream(ciphertext, plaintext)
*/
package generators
