// Copyright (c) 2025 hitoshi.mukai.b@gmail.com. All rights reserved.
// You are free to use this source code for any purpose. The copyright remains with the author.
// The author accepts no liability for any damages arising from the use of this source code.
//
// Last modified: 2026.10.18
//

package sezecef

const (
	PI = 3.1415926535897932 // Pi
	Re = 6378.1363          // Earth's equatorial radius [km]
	Ee = 0.081819221456     // Earth's eccentricity
)

// Squared eccentricity, evaluated in float64 like the rest of the arithmetic
var ee2 = float64(Ee) * Ee

// Usage line printed when the command is given the wrong number of arguments
const UsageLine = "Usage: python3 sez_to_ecef.py o_lat_deg o_lon_deg o_hae_km s_km e_km z_km"
