// Package value defines the tagged union used for request parameters.
//
// A Value is exactly one of Missing, String, Number, Bool, Seq, Map or File.
// Query strings and request bodies are decoded into Values, coerced by the
// coerce package, walked by keypath and escaped by sanitizer. Every one of
// those steps builds new Values instead of mutating existing ones, which lets
// decoded query strings be cached and shared between concurrent requests.
//
// # Usage
//
//	v := value.FromAny(map[string]any{
//		"page": "2",
//		"tags": []string{"go", "web"},
//	})
//
//	tags, _ := v.Get("tags")
//	for _, t := range tags.Items() {
//		fmt.Println(t)
//	}
//
// # Absence
//
// IsMissing treats the Missing variant and the empty string as absent.
// Boolean false and numeric zero are values like any other.
//
// # JSON
//
// Values marshal to their natural JSON shape. Missing renders as null and a
// File renders as its FileRef descriptor.
package value
