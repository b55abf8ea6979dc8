package core

// bundledPacks returns the built-in pack set shipped with the binary. Each
// constructor mirrors the corresponding file under
// original_source/src/packs/ (or, where noted in that file's own comment,
// the teacher's own internal/core/patterns.go tier lists).
func bundledPacks() []*Pack {
	return []*Pack{
		filesystemPack(),
		gitPack(),
		sqlPack(),
		dockerPack(),
		terraformPack(),
		kubectlPack(),
		awsPack(),
		packageManagersPack(),
		diskPack(),
		servicesPack(),
		scpPack(),
		secretsPack(),
		cdnPack(),
		databasePack(),
		loadbalancerPack(),
		splunkPack(),
		mailgunPack(),
		scriptingPack(),
	}
}
