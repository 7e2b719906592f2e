// Package version provides the dotted compiler version value used across ccversion.
//
// A Version has a required major component and optional minor and patch
// components. Comparison treats a missing component as zero, so "11",
// "11.0" and "11.0.0" are equal, while String renders exactly the
// components that were parsed:
//
//	v, err := version.Parse("11.2")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(v)                                    // 11.2
//	fmt.Println(v.Equals(version.MustParse("11.2.0"))) // true
//
// Parse consults at most three components; "19.16.27027.1" parses as
// 19.16.27027.
package version
