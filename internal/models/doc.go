// Stylist - Personalized Outfit Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylist

/*
Package models defines data structures shared across the Stylist service.

The package sits below every other internal package and imports nothing from
them, so the database layer, the recommendation engine and the HTTP layer can
all exchange the same values without import cycles.

Model Categories:

1. Catalogue Models:
  - User: profile with positive/negative brand, style and color preferences
  - Outfit: a generated outfit with its ordered products and popularity points
  - Product: a single catalogue item (brand, type, free-text title/description, price)

2. Query Models:
  - OutfitQuery: paginated, style-filtered outfit lookup for one user

3. Derived Models:
  - ProfileData: everything known about a user for one scoring pass
  - InteractionPatterns: frequency maps and price range derived from likes
  - FrequencyMap, PriceRange: typed building blocks of InteractionPatterns

Thread Safety:

Values in this package are plain data. ProfileData handed out by the profile
cache is shared between concurrent requests and must be treated as read-only.
*/
package models
