// Package domain contains the core business entities of the social media API:
// users, the posts they publish and the comments they write. Entities carry
// their own validation rules and are independent of any storage or transport
// concern.
package domain
