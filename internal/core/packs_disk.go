package core

// diskPack is grounded on original_source/src/packs/system/disk.rs: dd to
// block devices, partition/filesystem tools, mdadm RAID, btrfs, the
// device-mapper, network block devices, and LVM.
func diskPack() *Pack {
	return &Pack{
		ID:   "system.disk",
		Name: "Disk Operations",
		Description: "Protects against destructive disk operations like dd to devices, mkfs, " +
			"partition table modifications, RAID management, btrfs/LVM/device-mapper " +
			"operations, and network block devices",
		Keywords: []string{
			"dd", "fdisk", "mkfs", "parted", "mount", "wipefs", "/dev/",
			"mdadm", "btrfs", "dmsetup", "nbd-client",
			"pvremove", "vgremove", "lvremove", "vgreduce", "lvreduce", "lvresize", "pvmove",
		},
		SafePatterns: []SafePattern{
			{Name: "dd-file-out", Regex: `dd\s+.*of=[^/\s]+\.`},
			{Name: "dd-discard", Regex: `dd\s+.*of=/dev/(?:null|zero|full)(?:\s|$)`},
			{Name: "lsblk", Regex: `\blsblk\b`},
			{Name: "fdisk-list", Regex: `fdisk\s+-l`},
			{Name: "parted-print", Regex: `parted\s+.*print`},
			{Name: "blkid", Regex: `\bblkid\b`},
			{Name: "df", Regex: `\bdf\b`},
			{Name: "mount-list", Regex: `\bmount\s*$`},
			{Name: "mdadm-detail", Regex: `mdadm\s+--detail\b`},
			{Name: "mdadm-examine", Regex: `mdadm\s+--examine\b`},
			{Name: "mdadm-query", Regex: `mdadm\s+--query\b`},
			{Name: "mdadm-query-short", Regex: `mdadm\s+-Q\b`},
			{Name: "mdadm-scan", Regex: `mdadm\s+--scan\b`},
			{Name: "btrfs-subvolume-list", Regex: `btrfs\s+subvolume\s+list\b`},
			{Name: "btrfs-subvolume-show", Regex: `btrfs\s+subvolume\s+show\b`},
			{Name: "btrfs-filesystem-show", Regex: `btrfs\s+filesystem\s+show\b`},
			{Name: "btrfs-filesystem-df", Regex: `btrfs\s+filesystem\s+df\b`},
			{Name: "btrfs-filesystem-usage", Regex: `btrfs\s+filesystem\s+usage\b`},
			{Name: "btrfs-device-stats", Regex: `btrfs\s+device\s+stats\b`},
			{Name: "btrfs-property-get", Regex: `btrfs\s+property\s+(?:get|list)\b`},
			{Name: "btrfs-scrub-status", Regex: `btrfs\s+scrub\s+status\b`},
			{Name: "dmsetup-ls", Regex: `dmsetup\s+ls\b`},
			{Name: "dmsetup-status", Regex: `dmsetup\s+status\b`},
			{Name: "dmsetup-info", Regex: `dmsetup\s+info\b`},
			{Name: "dmsetup-table", Regex: `dmsetup\s+table\b`},
			{Name: "dmsetup-deps", Regex: `dmsetup\s+deps\b`},
			{Name: "nbd-client-list", Regex: `nbd-client\s+-l\b`},
			{Name: "nbd-client-check", Regex: `nbd-client\s+.*-check\b`},
			{Name: "lvm-list", Regex: `\b(?:lvs|vgs|pvs)\b`},
			{Name: "lvm-display", Regex: `\b(?:lvdisplay|vgdisplay|pvdisplay)\b`},
			{Name: "lvm-scan", Regex: `\b(?:lvscan|vgscan|pvscan)\b`},
		},
		DestructivePatterns: []DestructivePattern{
			{Name: "dd-device", Regex: `dd\s+.*of=/dev/`, Severity: SeverityHigh, Reason: "dd targets a block device", Explanation: "dd to a block device will overwrite all data on that device."},
			{Name: "dd-wipe", Regex: `dd\s+.*if=/dev/(?:zero|urandom|random).*of=/dev/`, Severity: SeverityCritical, Reason: "dd wipes a device with zero/random data", Explanation: "dd from /dev/zero or /dev/urandom to a device will wipe all data."},
			{Name: "fdisk-edit", Regex: `fdisk\s+/dev/(?:[^-\n]|-+[^-l\n])*-*(?m:$)`, Severity: SeverityHigh, Reason: "fdisk can modify partition tables", Explanation: "fdisk opened against a device (not -l) can edit the partition table and cause data loss."},
			{Name: "parted-modify", Regex: `parted\s+/dev/\S+\s+(?:$|[^p]|p(?:$|[^r]|r(?:$|[^i]|i(?:$|[^n]|n(?:$|[^t])))))`, Severity: SeverityHigh, Reason: "parted can modify partition tables", Explanation: "parted subcommands other than print can rewrite partition boundaries and cause data loss."},
			{Name: "mkfs", Regex: `mkfs(?:\.[a-z0-9]+)?\s+`, Severity: SeverityCritical, Reason: "formats a partition or device", Explanation: "mkfs formats a partition or device and erases all existing data on it."},
			{Name: "wipefs", Regex: `wipefs\s+`, Severity: SeverityHigh, Reason: "removes filesystem signatures", Explanation: "wipefs erases filesystem, RAID, or partition-table signatures from a device."},
			{Name: "mount-bind-root", Regex: `mount\s+.*--bind\s+.*\s+/(?:$|[^a-z])`, Severity: SeverityMedium, Reason: "bind mount onto the root directory", Explanation: "mount --bind targeting root can have system-wide effects."},
			{Name: "umount-force", Regex: `umount\s+.*-[a-z]*f`, Severity: SeverityMedium, Reason: "force unmount", Explanation: "umount -f force unmounts, which can cause data loss if the device is still in use."},
			{Name: "losetup-device", Regex: `losetup\s+/dev/loop`, Severity: SeverityLow, Reason: "modifies loop device associations", Explanation: "losetup changes which backing file a loop device maps to; verify before proceeding."},
			{Name: "mdadm-stop", Regex: `mdadm\s+(?:.*\s+)?(?:--stop|-S)\b`, Severity: SeverityHigh, Reason: "stops a running RAID array", Explanation: "mdadm --stop shuts down a RAID array; data on it becomes inaccessible until reassembled."},
			{Name: "mdadm-remove", Regex: `mdadm\s+(?:.*\s+)?--remove\b`, Severity: SeverityHigh, Reason: "removes a device from a RAID array", Explanation: "mdadm --remove pulls a drive out of an array; redundancy loss can lead to data loss."},
			{Name: "mdadm-fail", Regex: `mdadm\s+(?:.*\s+)?(?:--fail|-f)\b`, Severity: SeverityMedium, Reason: "marks a RAID member as failed", Explanation: "mdadm --fail should only be used for intentional drive replacement."},
			{Name: "mdadm-zero-superblock", Regex: `mdadm\s+(?:.*\s+)?--zero-superblock\b`, Severity: SeverityCritical, Reason: "erases RAID metadata permanently", Explanation: "mdadm --zero-superblock permanently erases RAID metadata; the array cannot be reassembled afterward."},
			{Name: "mdadm-create", Regex: `mdadm\s+(?:.*\s+)?(?:--create|-C)\b`, Severity: SeverityCritical, Reason: "initializes a new RAID array", Explanation: "mdadm --create initializes a new array, erasing existing data on the member devices."},
			{Name: "mdadm-grow", Regex: `mdadm\s+(?:.*\s+)?--grow\b`, Severity: SeverityHigh, Reason: "reshapes a RAID array", Explanation: "mdadm --grow reshapes an array; interruption during the process can cause data loss."},
			{Name: "btrfs-subvolume-delete", Regex: `btrfs\s+subvolume\s+delete\b`, Severity: SeverityHigh, Reason: "permanently removes a subvolume", Explanation: "btrfs subvolume delete permanently removes a subvolume and all its data."},
			{Name: "btrfs-device-remove", Regex: `btrfs\s+device\s+(?:remove|delete)\b`, Severity: SeverityHigh, Reason: "removes a device from a btrfs filesystem", Explanation: "btrfs device remove redistributes data off the device first; interrupting it causes data loss."},
			{Name: "btrfs-device-add", Regex: `btrfs\s+device\s+add\b`, Severity: SeverityMedium, Reason: "adds a device to a btrfs filesystem", Explanation: "Verify the device is correct before incorporating it into the filesystem."},
			{Name: "btrfs-balance", Regex: `btrfs\s+balance\s+start\b`, Severity: SeverityMedium, Reason: "redistributes data across devices", Explanation: "btrfs balance can be slow and disruptive to ongoing I/O."},
			{Name: "btrfs-check-repair", Regex: `btrfs\s+check\s+(?:.*\s+)?--repair\b`, Severity: SeverityCritical, Reason: "attempts to repair filesystem metadata", Explanation: "btrfs check --repair can itself cause data loss; back up first."},
			{Name: "btrfs-rescue", Regex: `btrfs\s+rescue\b`, Severity: SeverityHigh, Reason: "emergency metadata recovery", Explanation: "btrfs rescue modifies filesystem metadata; use only as a last resort."},
			{Name: "btrfs-filesystem-resize", Regex: `btrfs\s+filesystem\s+resize\b`, Severity: SeverityMedium, Reason: "can shrink a filesystem", Explanation: "Shrinking below the data in use causes data loss."},
			{Name: "dmsetup-remove", Regex: `dmsetup\s+remove\b`, Severity: SeverityHigh, Reason: "detaches a device-mapper device", Explanation: "dmsetup remove can cause data loss if the device is still in use."},
			{Name: "dmsetup-remove-all", Regex: `dmsetup\s+remove_all\b`, Severity: SeverityCritical, Reason: "removes every device-mapper device", Explanation: "dmsetup remove_all tears down all mapped devices on the system."},
			{Name: "dmsetup-wipe-table", Regex: `dmsetup\s+wipe_table\b`, Severity: SeverityHigh, Reason: "replaces the mapping table with an error target", Explanation: "All I/O to the device fails after this."},
			{Name: "dmsetup-clear", Regex: `dmsetup\s+clear\b`, Severity: SeverityMedium, Reason: "clears a device's mapping table", Explanation: "Removes the mapping table from the named device."},
			{Name: "dmsetup-load", Regex: `dmsetup\s+load\b`, Severity: SeverityMedium, Reason: "loads a new mapping table", Explanation: "Verify the new table is correct before loading it."},
			{Name: "dmsetup-create", Regex: `dmsetup\s+create\b`, Severity: SeverityMedium, Reason: "creates a new device-mapper device", Explanation: "Verify parameters carefully before creating the mapping."},
			{Name: "nbd-client-disconnect", Regex: `nbd-client\s+(?:.*\s+)?-d\b`, Severity: SeverityMedium, Reason: "disconnects a network block device", Explanation: "Disconnecting before a clean unmount can cause data loss."},
			{Name: "nbd-client-connect", Regex: `nbd-client\s+\S+\s+\d+\s+/dev/nbd`, Severity: SeverityMedium, Reason: "connects a network block device", Explanation: "Verify the server and device; connecting can expose or overwrite data."},
			{Name: "pvremove", Regex: `\bpvremove\b`, Severity: SeverityCritical, Reason: "erases LVM metadata from a physical volume", Explanation: "After pvremove the physical volume's data becomes inaccessible to LVM."},
			{Name: "vgremove", Regex: `\bvgremove\b`, Severity: SeverityCritical, Reason: "deletes a volume group", Explanation: "vgremove deletes a volume group and every logical volume within it."},
			{Name: "lvremove", Regex: `\blvremove\b`, Severity: SeverityCritical, Reason: "deletes a logical volume", Explanation: "lvremove permanently deletes a logical volume and all its data."},
			{Name: "vgreduce", Regex: `\bvgreduce\b`, Severity: SeverityHigh, Reason: "removes a physical volume from a group", Explanation: "Data may be lost if the removed physical volume still held extents."},
			{Name: "lvreduce", Regex: `\blvreduce\b`, Severity: SeverityHigh, Reason: "shrinks a logical volume", Explanation: "Shrink the filesystem first; lvreduce before that loses data."},
			{Name: "lvresize-shrink", Regex: `lvresize\s+(?:.*\s+)?(?:-L\s*-|-l\s*-|--size\s+\S*-)`, Severity: SeverityHigh, Reason: "lvresize with a negative size shrinks the volume", Explanation: "Resize the filesystem first or the shrink will discard data."},
			{Name: "pvmove", Regex: `\bpvmove\b`, Severity: SeverityMedium, Reason: "migrates data between physical volumes", Explanation: "Do not interrupt pvmove; interruption can lose data being migrated."},
			{Name: "lvconvert-merge", Regex: `lvconvert\s+(?:.*\s+)?--merge\b`, Severity: SeverityMedium, Reason: "reverts a logical volume to a snapshot", Explanation: "Changes made since the snapshot was taken are discarded."},
		},
	}
}
