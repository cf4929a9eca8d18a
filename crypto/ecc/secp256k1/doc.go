// Copyright (c) 2017-2018 The nox developers
// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 fixes the generic curve arithmetic of package ecc to the
secp256k1 koblitz curve used by Bitcoin.  See
http://www.secg.org/collateral/sec2_final.pdf for details on the
standard.

The curve parameters, the generator G and the point at infinity are package
level values computed once at initialisation.  On top of the generic group law
the package adds the modular square root needed for point decompression,
fixed width hex formatting of field elements and scalar multiplication sized
to the group order.

None of the arithmetic is constant time.
*/
package secp256k1
