// Package medcontent is a read-only catalog of leveled medical-education
// content. Each database (geriatric, ophthalmic, pregnancy, urology,
// physiology) is validated once at Open and then served from memory.
//
// Many entries explain the same topic at five complexity levels, from a lay
// reader (1) to a clinician (5).
//
//	lib, err := medcontent.Open(medcontent.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	c, ok := lib.Geriatric().GetByID("sarcopenia")
//	tier, ok := lib.Geriatric().AtLevel("sarcopenia", medcontent.LevelLay)
//	hits := lib.Geriatric().Search("fall")
//
// Query methods never fail: a miss is reported as (zero, false) or an empty
// slice. All methods are safe for concurrent use.
//
// Urology and physiology entries cross-reference other entries by id. Resolve,
// Outgoing and Dangling follow those links; Check reports navigation ids and
// references that point nowhere.
package medcontent
