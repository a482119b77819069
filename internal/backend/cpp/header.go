package cpp

import (
	"fmt"
	"strings"
)

// registryDecls is the fixed part of the declarations artifact: the record
// type, the extern registry symbols, and the iteration and lookup helpers.
// content() builds its std::string on first access via std::call_once and
// caches it in the record itself; copying a record resets the cache.
const registryDecls = `struct FileInfo {
    FileInfo(const char * name, const char * data, unsigned int size)
        : fileName(name), fileData(data), fileDataSize(size) {}
    FileInfo(const FileInfo & other)
        : fileName(other.fileName), fileData(other.fileData), fileDataSize(other.fileDataSize) {}

    std::string name() const { return std::string(fileName); }

    // Built on first access, then reused for the lifetime of the process.
    const std::string & content() const {
        std::call_once(m_contentOnce, [this] { m_content.assign(fileData, fileDataSize); });
        return m_content;
    }

    const char * fileName;
    const char * fileData;
    unsigned int fileDataSize;

private:
    mutable std::once_flag m_contentOnce;
    mutable std::string m_content;
};

extern const unsigned int fileInfoListSize;
extern const FileInfo * const fileInfoList;

struct FileInfoRange {
    const FileInfo * begin() const { return fileInfoList; }
    const FileInfo * end() const { return fileInfoListSize ? fileInfoList + fileInfoListSize : fileInfoList; }
    unsigned int size() const { return fileInfoListSize; }
};

inline FileInfoRange fileList() {
    return FileInfoRange();
}

inline const FileInfo * findFile(const std::string & name) {
    for (const FileInfo & file : fileList()) {
        if (file.name() == name) {
            return &file;
        }
    }
    return nullptr;
}
`

// Header returns the full text of the declarations artifact.
func (e *Emitter) Header() string {
	guard := e.ctx.includeGuard()

	var sb strings.Builder
	sb.WriteString(warningBanner)
	fmt.Fprintf(&sb, "#ifndef %s\n", guard)
	fmt.Fprintf(&sb, "#define %s\n", guard)
	sb.WriteString("\n")
	sb.WriteString("#include <mutex>\n")
	sb.WriteString("#include <string>\n")
	sb.WriteString("\n")

	if e.ctx.Namespace != "" {
		fmt.Fprintf(&sb, "namespace %s {\n\n", e.ctx.Namespace)
	}
	sb.WriteString(registryDecls)
	if e.ctx.Namespace != "" {
		fmt.Fprintf(&sb, "\n} // %s\n", e.ctx.Namespace)
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "#endif // %s\n", guard)
	return sb.String()
}
