// Package dom provides the minimal document tree the selection pipeline
// reads: elements, text nodes and positions inside them.
//
// Markup is parsed with golang.org/x/net/html, so documents written for a
// browser (implicit html/head/body, <br>, <style>) load as expected.
// Every node receives a [NodeID] at creation that never changes; paint
// chunk identity is derived from it.
package dom
