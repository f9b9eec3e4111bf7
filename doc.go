// Package jsonstruct holds the runtime support used by code generated with
// jsonstructgen: an insertion-ordered Set, calendar Date and TimeOfDay
// values, and the constructors that generated default initializers call.
//
// Generated code looks like this:
//
//	func NewOrder() *Order {
//	    return &Order{
//	        Tags:    jsonstruct.NewSet[string]("new", "unpaid"),
//	        Placed:  time.UnixMilli(1704067200000),
//	        Ship:    jsonstruct.NewDate("2024-01-05"),
//	        Total:   jsonstruct.NewDecimal("12.50"),
//	        Tracker: jsonstruct.MustParseURI("https://example.com/track"),
//	        Status:  MustParseOrderStatus("OPEN"),
//	    }
//	}
//
// The New and Must constructors panic on malformed input. They only run
// with literals taken from a schema that was checked at generation time.
package jsonstruct
